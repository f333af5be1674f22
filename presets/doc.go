// Package presets builds links for the common access shapes on top of the
// default linker.Manager:
//
//   - LinkDictionary: a key of a map attribute
//   - LinkList: an index of a slice attribute
//   - LinkObject: an attribute of a nested object
//   - FormattedTextFromDict: a read-only "{key}" rendering of a map attribute
//
// and their Multi variants, which apply the singular preset once per entry of
// a LinkMap. Links are read-only unless Writable is given.
//
// Example:
//
//	presets.LinkDictionary(reflect.TypeFor[User](), "UserData", "ID", "id")
//	id, _ := linker.Get(&User{UserData: map[string]any{"id": 1}}, "ID") // 1
package presets
