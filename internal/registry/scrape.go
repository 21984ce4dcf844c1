package registry

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// label aliases on the public page, folded to our canonical keys.
var labelAliases = map[string]string{
	"registro":            "registro",
	"numero de registro":  "registro",
	"no. de registro":     "registro",
	"folio":               "folio",
	"libro":               "libro",
	"expediente":          "expediente",
	"nombre":              "nombre",
	"razon social":        "nombre",
	"denominacion":        "nombre",
	"empresa":             "nombre",
	"estado":              "estado",
	"direccion":           "direccion",
	"direccion comercial": "direccion",
}

// ScrapeOfficialFields fetches the registry page and collects its labeled
// key/value pairs. The page renders the record as two-cell table rows.
func ScrapeOfficialFields(ctx context.Context, client *http.Client, url string) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch registry page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry page returned %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse registry page: %w", err)
	}

	fields := map[string]string{}
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		label := canonicalLabel(cells.First().Text())
		value := strings.TrimSpace(cells.Last().Text())
		if key, ok := labelAliases[label]; ok && value != "" {
			if _, dup := fields[key]; !dup {
				fields[key] = value
			}
		}
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no labeled fields found on registry page")
	}
	return fields, nil
}

var labelFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ñ", "n",
	":", "",
)

func canonicalLabel(s string) string {
	return strings.TrimSpace(strings.ToLower(labelFolder.Replace(s)))
}
