package usecase

import (
	"errors"
	"fmt"
	"net/http"

	repo "storefront/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
	Err     error // ログ用の元エラー（レスポンスには出さない）
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error { return e.Err }

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func wrapHTTPError(status int, message string, err error) error {
	return &HTTPError{Status: status, Message: message, Err: err}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// repositoryのエラーをHTTPのステータスに変換する
func toHTTPError(err error, notFoundMessage string) error {
	if err == nil {
		return nil
	}
	if _, ok := AsHTTPError(err); ok {
		return err
	}

	var dup *repo.DuplicateError
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, notFoundMessage)
	case errors.As(err, &dup):
		return wrapHTTPError(http.StatusConflict, dup.Error(), err)
	default:
		return wrapHTTPError(http.StatusInternalServerError, "db error", err)
	}
}

// 作成では404は返さない（重複は409、それ以外は500）
func toCreateHTTPError(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return wrapHTTPError(http.StatusInternalServerError, "db error", err)
	}
	return toHTTPError(err, "")
}
