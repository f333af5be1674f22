// Package match finds near misses among attribute and type names, so that
// link-file diagnostics can suggest what the author probably meant.
//
// Names are compared after normalization ("user_data", "userData" and
// "UserData" are the same name) using a Levenshtein similarity score.
package match
