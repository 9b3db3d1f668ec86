package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// LatestCode is the sentinel version code selecting the newest release of an app.
const LatestCode = "latest"

// Repository describes one source of applications.
type Repository struct {
	// Name is the human readable repository name (e.g., "F-Droid").
	Name string
	// BaseURL is the URL the index document and packages are served under, without trailing slash.
	BaseURL string
	// AppsKey groups the repository's declarations in the settings and its records in the lock file.
	AppsKey string
}

// IndexURL returns the URL of the repository's index document.
func (r Repository) IndexURL() string {
	return r.BaseURL + "/" + IndexFileName
}

// PackageURL returns the download URL of a package published by the repository.
func (r Repository) PackageURL(packageName string) string {
	return r.BaseURL + "/" + packageName
}

// DesiredCode is the version an app is declared at: a pinned version code or latest.
type DesiredCode struct {
	code   int
	latest bool
}

// Latest returns the DesiredCode selecting the newest release.
func Latest() DesiredCode {
	return DesiredCode{latest: true}
}

// Pinned returns the DesiredCode selecting an exact version code.
func Pinned(code int) DesiredCode {
	return DesiredCode{code: code}
}

// ParseDesiredCode parses "latest" or a decimal version code.
func ParseDesiredCode(s string) (DesiredCode, error) {
	s = strings.TrimSpace(s)
	if s == LatestCode {
		return Latest(), nil
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return DesiredCode{}, zerr.With(zerr.Wrap(ErrInvalidVersionCode, "cannot parse app code"), "code", s)
	}
	return Pinned(code), nil
}

// IsLatest reports whether the code is the "latest" sentinel.
func (c DesiredCode) IsLatest() bool {
	return c.latest
}

// Code returns the pinned version code. It is zero for latest.
func (c DesiredCode) Code() int {
	return c.code
}

// String returns "latest" or the decimal version code.
func (c DesiredCode) String() string {
	if c.latest {
		return LatestCode
	}
	return strconv.Itoa(c.code)
}

// MarshalText implements encoding.TextMarshaler.
func (c DesiredCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *DesiredCode) UnmarshalText(text []byte) error {
	parsed, err := ParseDesiredCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// AppDeclaration is a configured request for one application.
type AppDeclaration struct {
	// ApplicationID is the application id as published in the repository index.
	ApplicationID string
	// Code is the version the application is declared at.
	Code DesiredCode
}

// UsesLatest reports whether the declaration resolves through the latest path.
// forceLatest overrides pinned codes.
func (d AppDeclaration) UsesLatest(forceLatest bool) bool {
	return forceLatest || d.Code.IsLatest()
}

// LatestPackage is the answer of a latest-version index query.
type LatestPackage struct {
	// PackageName is the apkname of the first package listed for the application.
	PackageName string
	// Code is the application's market version code.
	Code int
}
