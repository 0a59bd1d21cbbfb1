//go:build tinygo || !cgo

package gradaux

import (
	"errors"

	"github.com/soypat/gradmap"
)

func ui(maps []*gradmap.Map, cfg UIConfig) error {
	return errors.New("require cgo for UI rendering")
}
