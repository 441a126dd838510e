//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeProduct — определение продукта с уникальным кодом.
func MakeProduct(opts ...func(*domain.ProductDefinition)) *domain.ProductDefinition {
	p := &domain.ProductDefinition{
		Code:   "SKU-" + UniqSuffix(),
		Status: domain.ProductStatusNew,
		Price:  100,
	}
	for _, fn := range opts {
		fn(p)
	}
	return p
}

func WithCode(code string) func(*domain.ProductDefinition) {
	return func(p *domain.ProductDefinition) { p.Code = code }
}

func WithPrice(price int64) func(*domain.ProductDefinition) {
	return func(p *domain.ProductDefinition) { p.Price = price }
}

// ChangeJSON — тело сообщения очереди для изменения продукта.
func ChangeJSON(code string, status int, price int64) []byte {
	return []byte(fmt.Sprintf(`{"code":%q,"status":%d,"price":%d}`, code, status, price))
}

// ItemCodes — n уникальных серийных кодов.
func ItemCodes(n int) []string {
	codes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		codes = append(codes, fmt.Sprintf("SN-%d-%s", i, UniqSuffix()))
	}
	return codes
}
