package attack

import (
	"fmt"
	"strings"

	"jayconrod.com/cryptanalysis/crypto"
	"jayconrod.com/cryptanalysis/oracle"
)

// The role value the defender assigns to new users. Its length decides
// where the role value starts relative to a block boundary.
const userRole = "user"

// ForgeAdminProfile splices ciphertext from an ECB profile oracle into a
// profile whose role is admin. o must encrypt
// "email=<plaintext>&uid=...&role=user" under a fixed key.
func ForgeAdminProfile(o oracle.Oracle, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	bs, err := MeasureBlockSize(o, cfg.maxBlockSize)
	if err != nil {
		return nil, err
	}

	// A block holding "admin" and valid padding, encrypted on its own.
	malicious := crypto.Pad(nil, []byte("admin"), bs)
	a, err := FindMatchingBlocks(o, malicious, bs, opts...)
	if err != nil {
		return nil, err
	}
	adminBlock := a.Ciphertext[a.Blocks*bs : (a.Blocks+1)*bs]

	// Grow the username until the ciphertext gains a block. At that point
	// the record ends exactly on a block boundary.
	email := func(user string) []byte { return []byte(user + "@bar.com") }
	user := "fo"
	ct, err := o.Encrypt(email(user))
	if err != nil {
		return nil, fmt.Errorf("querying oracle: %w", err)
	}
	base := len(ct)
	for grown := false; !grown; {
		if len(user) > bs+2 {
			return nil, fmt.Errorf("%w: ciphertext length never grew", ErrAlignmentNotFound)
		}
		user += "o"
		if ct, err = o.Encrypt(email(user)); err != nil {
			return nil, fmt.Errorf("querying oracle: %w", err)
		}
		grown = len(ct) > base
	}

	// Push the role value into a block of its own and replace that block.
	user += strings.Repeat("o", len(userRole))
	if ct, err = o.Encrypt(email(user)); err != nil {
		return nil, fmt.Errorf("querying oracle: %w", err)
	}
	cfg.log.Debug("forging profile", "username", user, "cut", base)
	forged := make([]byte, 0, base+bs)
	forged = append(forged, ct[:base]...)
	return append(forged, adminBlock...), nil
}

// ForgeAdminComment flips bits in CBC ciphertext from a comment oracle so
// that one field decrypts to "admin=true". The block ahead of the target
// is scrambled in the process.
func ForgeAdminComment(o oracle.Oracle, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	bs, err := MeasureBlockSize(o, cfg.maxBlockSize)
	if err != nil {
		return nil, err
	}
	const field = ";admin=true;"
	if bs < len(field) {
		return nil, fmt.Errorf("%w: block size %d too small", crypto.ErrAttackFailed, bs)
	}
	want := fill(cfg.filler, bs)
	copy(want[bs-len(field):], field)
	mask := make([]byte, bs)
	for i, c := range want {
		if c == ';' || c == '=' {
			mask[i] = 1
		}
	}
	payload := fill(cfg.filler^1, bs)
	payload = append(payload, crypto.XOR(nil, want, mask)...)

	a, err := FindMatchingBlocks(o, payload, bs, opts...)
	if err != nil {
		return nil, err
	}
	ct := append([]byte(nil), a.Ciphertext...)
	flip := ct[a.Blocks*bs : (a.Blocks+1)*bs]
	crypto.XOR(flip, flip, mask)
	return ct, nil
}
