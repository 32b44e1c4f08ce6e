// Package cookie implements a key=value&key=value record format and an
// oracle that hands out ECB-encrypted user profiles in that format.
package cookie

import (
	"fmt"
	"strconv"
	"strings"

	"jayconrod.com/cryptanalysis/crypto"
)

// ErrMalformed is returned when a record does not parse.
var ErrMalformed = fmt.Errorf("%w: malformed cookie", crypto.ErrEncoding)

// Parse splits a record into its fields. Values are not unescaped. A
// duplicate key keeps its last value.
func Parse(s string) (map[string]string, error) {
	fields := make(map[string]string)
	if s == "" {
		return fields, nil
	}
	for _, pair := range strings.Split(s, "&") {
		i := strings.IndexByte(pair, '=')
		if i < 0 {
			return nil, fmt.Errorf("%w: field %q has no '='", ErrMalformed, pair)
		}
		fields[pair[:i]] = pair[i+1:]
	}
	return fields, nil
}

// Encode joins fields in the order given by keys. Values are written
// verbatim, so a value containing '&' or '=' changes the record structure.
func Encode(keys []string, fields map[string]string) string {
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fields[k])
	}
	return b.String()
}

// Profile is a user record.
type Profile struct {
	Email string
	UID   int
	Role  string
}

var profileKeys = []string{"email", "uid", "role"}

func (p Profile) String() string {
	return Encode(profileKeys, map[string]string{
		"email": p.Email,
		"uid":   strconv.Itoa(p.UID),
		"role":  p.Role,
	})
}

// ProfileFor returns the record for a new user. Metacharacters are
// stripped from email.
func ProfileFor(email string) string {
	email = strings.NewReplacer("=", "", "&", "").Replace(email)
	return Profile{Email: email, UID: 10, Role: "user"}.String()
}

// ParseProfile parses a record produced by Profile.String.
func ParseProfile(s string) (Profile, error) {
	fields, err := Parse(s)
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	for k, v := range fields {
		switch k {
		case "email":
			p.Email = v
		case "uid":
			if p.UID, err = strconv.Atoi(v); err != nil {
				return Profile{}, fmt.Errorf("%w: uid %q", ErrMalformed, v)
			}
		case "role":
			p.Role = v
		default:
			return Profile{}, fmt.Errorf("%w: unknown key %q", ErrMalformed, k)
		}
	}
	if _, ok := fields["email"]; !ok {
		return Profile{}, fmt.Errorf("%w: missing email", ErrMalformed)
	}
	return p, nil
}
