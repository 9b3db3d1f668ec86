package fdroid

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/mia/internal/core/domain"
	"go.trai.ch/mia/internal/core/ports"
	"go.trai.ch/zerr"
)

const applicationElement = "application"

type applicationXML struct {
	ID            string       `xml:"id,attr"`
	MarketVerCode string       `xml:"marketvercode"`
	Packages      []packageXML `xml:"package"`
}

type packageXML struct {
	APKName     string `xml:"apkname"`
	VersionCode string `xml:"versioncode"`
}

// Index answers resolution queries against a parsed repository index.
// It is immutable after ParseIndex returns.
type Index struct {
	applications []applicationXML
}

// Parser implements ports.IndexParser by reading index documents from disk.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseIndex reads and parses the index document at path.
func (p *Parser) ParseIndex(path string) (ports.IndexQuerier, error) {
	//nolint:gosec // Path is built from the resources directory and a validated apps key
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(domain.ErrIndexParseFailed, zerr.With(zerr.Wrap(err, "failed to read index"), "path", path))
	}

	index, err := ParseIndex(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return index, nil
}

// ParseIndex parses an index document.
// Every <application> element is collected in document order, whatever its depth or the
// name of the root element.
func ParseIndex(data []byte) (*Index, error) {
	applications, err := decodeApplications(data)
	if err != nil {
		return nil, errors.Join(domain.ErrIndexParseFailed, err)
	}

	for i := range applications {
		app := &applications[i]
		app.ID = strings.TrimSpace(app.ID)
		app.MarketVerCode = strings.TrimSpace(app.MarketVerCode)
		for j := range app.Packages {
			app.Packages[j].APKName = strings.TrimSpace(app.Packages[j].APKName)
			app.Packages[j].VersionCode = strings.TrimSpace(app.Packages[j].VersionCode)
		}
	}

	return &Index{applications: applications}, nil
}

func decodeApplications(data []byte) ([]applicationXML, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var applications []applicationXML
	hasRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		hasRoot = true
		if start.Name.Local != applicationElement {
			continue
		}

		var app applicationXML
		if err := dec.DecodeElement(&app, &start); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}

	if !hasRoot {
		return nil, zerr.New("index document has no root element")
	}
	return applications, nil
}

// ResolveLatest returns the apkname of the first package listed for applicationID,
// paired with the application's marketvercode. When the id appears more than once, the
// first entry that lists a package with a usable market version code wins.
func (i *Index) ResolveLatest(applicationID string) (domain.LatestPackage, bool) {
	for _, app := range i.applications {
		if app.ID != applicationID || len(app.Packages) == 0 || app.Packages[0].APKName == "" {
			continue
		}

		code, err := strconv.Atoi(app.MarketVerCode)
		if err != nil {
			continue
		}

		return domain.LatestPackage{
			PackageName: app.Packages[0].APKName,
			Code:        code,
		}, true
	}
	return domain.LatestPackage{}, false
}

// ResolveExact returns the apkname of the first package of applicationID whose
// versioncode equals code.
func (i *Index) ResolveExact(applicationID string, code int) (string, bool) {
	want := strconv.Itoa(code)
	for _, app := range i.applications {
		if app.ID != applicationID {
			continue
		}
		for _, pkg := range app.Packages {
			if pkg.VersionCode == want && pkg.APKName != "" {
				return pkg.APKName, true
			}
		}
	}
	return "", false
}
