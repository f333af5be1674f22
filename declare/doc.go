// Package declare describes links as data and applies them later.
//
// A type lists its links by implementing Declarer:
//
//	func (User) Links() []*declare.Link {
//		return []*declare.Link{
//			declare.MultiDictionary("UserData", presets.Names("id", "name"), presets.Writable()),
//			declare.FormattedText("UserData", "name_tag", "{name}#{id}"),
//		}
//	}
//
//	func init() { declare.MustLink[User]() }
//
// Links are applied in order through the default linker manager.
package declare
