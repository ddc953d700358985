package export

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/khrees2412/careerkit/pkg/models"
)

// DigestSubject is the email subject used for digest mails
const DigestSubject = "My 9AM Job Digest"

// DigestDateLayout is how digest headers print the date
const DigestDateLayout = "January 2, 2006"

// DigestText renders a ranked digest with a dated header
func DigestText(jobs []models.ScoredJob, date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Top 10 Jobs For You — %s\n\n", date.Format(DigestDateLayout))
	for i, j := range jobs {
		fmt.Fprintf(&b, "%d. %s at %s\n", i+1, j.Title, j.Company)
		fmt.Fprintf(&b, "   - Location: %s (%s)\n", j.Location, j.Mode)
		fmt.Fprintf(&b, "   - Match: %d%%\n", j.MatchScore)
		fmt.Fprintf(&b, "   - Apply: %s\n\n", j.ApplyURL)
	}
	return b.String()
}

// DigestMailto builds a mailto link with no recipient carrying the digest as
// its body
func DigestMailto(text string) string {
	return "mailto:?subject=" + encodeComponent(DigestSubject) + "&body=" + encodeComponent(text)
}

// componentSafe are the characters encodeURIComponent leaves as they are
// but QueryEscape escapes
var componentSafe = strings.NewReplacer("+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")

// encodeComponent escapes s the way browsers escape a URI component
func encodeComponent(s string) string {
	return componentSafe.Replace(url.QueryEscape(s))
}
