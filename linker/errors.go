package linker

import (
	"errors"

	"attr-linker/internal/attrs"
)

// Error families. The linker and manager sentinels below match ErrAttrLinker
// with errors.Is, and ErrLinker or ErrManager depending on who raised them.
var (
	// ErrAttrLinker is the root of the package errors.
	ErrAttrLinker = errors.New("attr linker error")
	// ErrLinker groups errors about the state of a single linker.
	ErrLinker = familyOf(ErrAttrLinker, "linker error")
	// ErrManager groups errors about manager registrations.
	ErrManager = familyOf(ErrAttrLinker, "link manager error")
)

var (
	// ErrExists indicates a duplicate registration name without overwrite.
	ErrExists = familyOf(ErrManager, "linker already exists")
	// ErrNotFound indicates a lookup or apply of an unregistered name.
	ErrNotFound = familyOf(ErrManager, "linker not found")
	// ErrIncompatibleAccessor indicates a replacement accessor type that does not implement Accessor.
	ErrIncompatibleAccessor = familyOf(ErrManager, "incompatible accessor type")
	// ErrNotReady indicates an install attempted before Realize.
	ErrNotReady = familyOf(ErrLinker, "linker is not ready")
	// ErrReadOnly indicates a write through a property built without setter.
	ErrReadOnly = familyOf(ErrAttrLinker, "can't set attribute")
	// ErrNilType indicates a nil target type.
	ErrNilType = familyOf(ErrAttrLinker, "nil target type")
)

// familyError is a sentinel that also matches its parent.
type familyError struct {
	msg    string
	parent error
}

func familyOf(parent error, msg string) error {
	return &familyError{msg: msg, parent: parent}
}

func (e *familyError) Error() string { return e.msg }

func (e *familyError) Unwrap() error { return e.parent }

// Attribute access errors, shared with the reflective layer.
var (
	ErrKeyLookup       = attrs.ErrKeyLookup
	ErrNoAttribute     = attrs.ErrNoAttribute
	ErrIndexOutOfRange = attrs.ErrIndexOutOfRange
	ErrNotAddressable  = attrs.ErrNotAddressable
	ErrTypeMismatch    = attrs.ErrTypeMismatch
	ErrFormat          = attrs.ErrFormat
)
