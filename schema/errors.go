package schema

import (
	"github.com/pkg/errors"

	"github.com/kungfusheep/schemasync/wire/werr"
)

func errInvalidSetAt(index, size int) error {
	return errors.Wrapf(werr.ErrInvalidSetAt, "index %d beyond size %d", index, size)
}
