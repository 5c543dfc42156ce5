package records

import "strings"

// Name is the display name identifying a saved record. The on-disk key is
// derived by replacing each space with an underscore, so two distinct
// display names can normalize to the same key (e.g. "Jane Doe" and
// "Jane_Doe"). That collision is accepted: the later save overwrites the
// earlier one and List reconstructs a single display name.
type Name string

const fileSuffix = "_resume.json"

// Key returns the normalized on-disk identity for the name.
func (n Name) Key() string {
	return strings.ReplaceAll(string(n), " ", "_")
}

// FileName returns the record file name for this record.
func (n Name) FileName() string {
	return n.Key() + fileSuffix
}

// NameFromFileName recovers the display name from a record file name.
// The second return is false when the file name does not carry the
// record suffix.
func NameFromFileName(fileName string) (Name, bool) {
	if !strings.HasSuffix(fileName, fileSuffix) {
		return "", false
	}
	key := strings.TrimSuffix(fileName, fileSuffix)
	return Name(strings.ReplaceAll(key, "_", " ")), true
}
