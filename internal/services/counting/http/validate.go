package http

import (
	"sync"

	"stockcount/internal/core/normalize"
	"stockcount/internal/platform/net/http/bind"
)

var registerOnce sync.Once

// registerValidators installs the custom tags used by counting DTOs
func registerValidators() {
	registerOnce.Do(func() {
		if err := bind.RegisterTag("item_id", validItemID, "{0} must contain a printable item id"); err != nil {
			panic(err)
		}
	})
}

// validItemID accepts ids that survive canonicalization
func validItemID(fl bind.FieldLevel) bool {
	return normalize.ItemID(fl.Field().String()) != ""
}
