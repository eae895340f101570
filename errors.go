package localeroute

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-localeroute/internal/routing"
)

const (
	langMismatchCode    = "LOCALE_LANG_MISMATCH"
	unlocalizedPathCode = "LOCALE_UNLOCALIZED_PATH"
	invalidArgumentCode = "LOCALE_INVALID_ARGUMENT"
	configInvalidCode   = "LOCALE_CONFIG_INVALID"
	permalinkFailedCode = "LOCALE_PERMALINK_FAILED"
	contentFailedCode   = "LOCALE_CONTENT_FAILED"
)

var (
	// ErrLangMismatch reports a path that does not start with the expected
	// locale prefix.
	ErrLangMismatch = routing.ErrLangMismatch
	// ErrUnlocalizedPath reports a path without a detectable locale.
	ErrUnlocalizedPath = routing.ErrUnlocalizedPath
	// ErrInvalidArgument reports unusable input such as an empty language list.
	ErrInvalidArgument = routing.ErrInvalidArgument
)

type (
	// LangMismatchError carries the path and language that failed to line up.
	LangMismatchError = routing.LangMismatchError
	// UnlocalizedPathError carries the path without a locale.
	UnlocalizedPathError = routing.UnlocalizedPathError
)

func wrapRoutingError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, routing.ErrLangMismatch):
		return goerrors.Wrap(err, goerrors.CategoryValidation, "path does not belong to language").
			WithTextCode(langMismatchCode)
	case errors.Is(err, routing.ErrUnlocalizedPath):
		return goerrors.Wrap(err, goerrors.CategoryValidation, "path has no detectable language").
			WithTextCode(unlocalizedPathCode)
	case errors.Is(err, routing.ErrInvalidArgument):
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid routing argument").
			WithTextCode(invalidArgumentCode)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "routing failed")
	}
}

func wrapConfigError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid localeroute configuration").
		WithTextCode(configInvalidCode)
}

func wrapPermalinkError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, routing.ErrUnlocalizedPath) || errors.Is(err, routing.ErrLangMismatch) {
		return wrapRoutingError(err)
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "permalink could not be built").
		WithTextCode(permalinkFailedCode)
}

func wrapContentError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "content could not be loaded").
		WithTextCode(contentFailedCode)
}
