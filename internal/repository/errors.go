package repository

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// 一意制約違反（slug/skuなど）
var ErrDuplicate = errors.New("duplicate")

// DuplicateError はどの項目が重複したかを持つ。errors.Is(err, ErrDuplicate) で判定できる
type DuplicateError struct {
	Field string
	Err   error
}

func (e *DuplicateError) Error() string {
	if e.Field == "" {
		return ErrDuplicate.Error()
	}
	return fmt.Sprintf("%s already exists", e.Field)
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

func (e *DuplicateError) Unwrap() error { return e.Err }
