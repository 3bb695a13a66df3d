package lesspass

import (
	"strconv"

	"github.com/stanley-fork/lesspass/internal/common"
	"github.com/stanley-fork/lesspass/internal/cryptox"
)

// Derive returns the password for profile p under master.
//
// The profile is validated first and an invalid one is rejected with an
// *InvalidProfileError before any key stretching runs. An empty master
// password is a *DerivationError. Derive keeps no reference to master and
// wipes its intermediate entropy before returning.
func Derive(master []byte, p Profile) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if len(master) == 0 {
		return "", &DerivationError{Err: ErrEmptyMasterPassword}
	}

	entropy, err := cryptox.Stretch(master, Salt(p))
	if err != nil {
		return "", &DerivationError{Err: err}
	}
	defer common.WipeByteArray(entropy)

	return render(entropy, p.EnabledClasses(), p.Length), nil
}

// Salt returns site || login || lowercase hex counter.
func Salt(p Profile) []byte {
	salt := make([]byte, 0, len(p.Site)+len(p.Login)+8)
	salt = append(salt, p.Site...)
	salt = append(salt, p.Login...)
	return strconv.AppendInt(salt, int64(p.Counter), 16)
}
