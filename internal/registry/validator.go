package registry

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmonzon-gt/distribuidores/internal/extract"
)

// CheckResult is what the pipeline consumes. Unavailable means the online
// check could not run (no QR, network or scrape failure) and must never be
// treated as a mismatch.
type CheckResult struct {
	Performed   bool
	Unavailable bool
	Match       bool
	Detail      string
	Official    map[string]string
}

// CrossValidator fetches and compares the official registry record for a
// commerce license document.
type CrossValidator struct {
	client *http.Client
	logger *slog.Logger
}

func NewCrossValidator(timeout time.Duration, logger *slog.Logger) *CrossValidator {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CrossValidator{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Check decodes the QR on the document image, scrapes the referenced page,
// and compares it against the extracted fields. Errors degrade to
// Unavailable.
func (v *CrossValidator) Check(ctx context.Context, imagePath string, fields extract.Fields) CheckResult {
	payload, err := DecodeQR(imagePath)
	if err != nil {
		v.logger.Debug("qr decode skipped", "path", imagePath, "reason", err)
		return CheckResult{Unavailable: true, Detail: "online check unavailable: no decodable QR"}
	}
	if !IsRegistryURL(payload) {
		v.logger.Debug("qr payload is not a registry url", "payload", payload)
		return CheckResult{Unavailable: true, Detail: "online check unavailable: QR payload is not a URL"}
	}

	official, err := ScrapeOfficialFields(ctx, v.client, payload)
	if err != nil {
		v.logger.Warn("registry scrape failed", "url", payload, "error", err)
		return CheckResult{Unavailable: true, Detail: "online check unavailable: " + err.Error()}
	}

	cmp := Compare(official, fields)
	v.logger.Info("registry cross-check done",
		"url", payload, "compared", cmp.Compared, "agreed", cmp.Agreed, "match", cmp.Match)
	return CheckResult{
		Performed: true,
		Match:     cmp.Match,
		Detail:    cmp.Detail,
		Official:  official,
	}
}
