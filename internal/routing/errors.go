package routing

import (
	"errors"
	"fmt"
)

var (
	// ErrLangMismatch indicates a path does not start with the expected locale prefix.
	ErrLangMismatch = errors.New("routing: path does not match language")
	// ErrUnlocalizedPath indicates no locale could be detected where one is required.
	ErrUnlocalizedPath = errors.New("routing: path is not localized")
	// ErrInvalidArgument indicates a caller supplied unusable input, such as an
	// empty candidate list.
	ErrInvalidArgument = errors.New("routing: invalid argument")
)

// LangMismatchError reports the path and language that failed to line up.
// It unwraps to ErrLangMismatch.
type LangMismatchError struct {
	Path string
	Lang string
}

func (e *LangMismatchError) Error() string {
	return fmt.Sprintf("routing: path %q does not match language %q", e.Path, e.Lang)
}

func (e *LangMismatchError) Unwrap() error {
	return ErrLangMismatch
}

// UnlocalizedPathError reports a path without a detectable locale. It unwraps
// to ErrUnlocalizedPath.
type UnlocalizedPathError struct {
	Path string
}

func (e *UnlocalizedPathError) Error() string {
	return fmt.Sprintf("routing: path %q is not localized", e.Path)
}

func (e *UnlocalizedPathError) Unwrap() error {
	return ErrUnlocalizedPath
}
