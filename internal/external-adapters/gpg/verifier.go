// Package gpg verifies OpenPGP detached signatures over recipe files.
package gpg

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// armorPrefix starts every armored signature block
var armorPrefix = []byte("-----BEGIN PGP SIGNATURE-----")

// Verifier checks detached signatures against an in-memory keyring
type Verifier struct {
	keyring openpgp.EntityList
}

// NewVerifier creates a verifier with an empty keyring
func NewVerifier() *Verifier {
	return &Verifier{keyring: openpgp.EntityList{}}
}

// ImportKeyFromFile adds the public keys of an armored or binary keyring
// file. Keys already imported are kept.
func (v *Verifier) ImportKeyFromFile(keyPath string) error {
	//nolint:gosec // G304: keyPath is the configured keyring
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}

	keys, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	if err != nil {
		keys, err = openpgp.ReadKeyRing(bytes.NewReader(data))
	}
	if err != nil {
		return fmt.Errorf("failed to read key %s: %w", keyPath, err)
	}
	if len(keys) == 0 {
		return fmt.Errorf("no keys found in %s", keyPath)
	}

	v.keyring = append(v.keyring, keys...)
	return nil
}

// VerifySignature checks sigPath, armored or binary, against the bytes read from signed
func (v *Verifier) VerifySignature(signed io.Reader, sigPath string) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no keys imported, call ImportKeyFromFile first")
	}

	//nolint:gosec // G304: sigPath sits next to the configured recipe file
	sigFile, err := os.Open(sigPath)
	if err != nil {
		return fmt.Errorf("failed to open signature file: %w", err)
	}
	//nolint:errcheck // read-only handle
	defer sigFile.Close()

	sig := bufio.NewReader(sigFile)
	head, _ := sig.Peek(len(armorPrefix))

	check := openpgp.CheckDetachedSignature
	if bytes.Equal(head, armorPrefix) {
		check = openpgp.CheckArmoredDetachedSignature
	}
	if _, err := check(v.keyring, signed, sig, nil); err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}
	return nil
}

// VerifySignatureFromFile verifies sigPath as a detached signature of filePath
func (v *Verifier) VerifySignatureFromFile(filePath, sigPath string) error {
	//nolint:gosec // G304: filePath is the configured recipe file
	data, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}
	//nolint:errcheck // read-only handle
	defer data.Close()

	return v.VerifySignature(data, sigPath)
}

// GetKeyringSize returns the number of keys in the keyring
func (v *Verifier) GetKeyringSize() int {
	return len(v.keyring)
}

// ClearKeyring drops every imported key
func (v *Verifier) ClearKeyring() {
	v.keyring = openpgp.EntityList{}
}
