package locate

import (
	"errors"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/dromeroa/expedientes/internal/textutil"
)

// ErrNoMatch is returned when no candidate clears the score threshold.
var ErrNoMatch = errors.New("no document cleared the match threshold")

// Candidate is a PDF filename inside a case folder.
type Candidate struct {
	Name string // filename with extension
	Stem string // filename without extension
}

// Match is a located candidate together with its similarity score.
type Match struct {
	Candidate
	Score int
}

// FromDir builds locator candidates from a folder listing, keeping only
// PDF files and preserving directory-listing order. Listing order is the
// deterministic tie-breaker for equal scores.
func FromDir(entries []fs.DirEntry) []Candidate {
	var cands []Candidate
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !strings.EqualFold(ext, ".pdf") {
			continue
		}
		cands = append(cands, Candidate{
			Name: e.Name(),
			Stem: strings.TrimSuffix(e.Name(), ext),
		})
	}
	return cands
}

// Best scores every candidate stem against pattern with a partial-ratio
// similarity and returns the highest-scoring candidate at or above
// threshold. Ties keep the first candidate encountered. Returns
// ErrNoMatch when nothing qualifies.
func Best(cands []Candidate, pattern string, threshold int) (Match, error) {
	best := Match{Score: -1}
	for _, c := range cands {
		score := fuzzy.PartialRatio(pattern, textutil.NormalizeStem(c.Stem))
		if score < threshold || score <= best.Score {
			continue
		}
		best = Match{Candidate: c, Score: score}
	}
	if best.Score < 0 {
		return Match{}, ErrNoMatch
	}
	return best, nil
}

var numericPrefix = regexp.MustCompile(`^\d+`)

// BestVersioned selects among threshold-passing candidates by leading
// numeric prefix (descending), then score (descending). Execution forms
// are versioned with an ascending numeric prefix, and the latest filing
// must win over superseded ones even at equal name similarity. A stem
// without a numeric prefix ranks below any stem that has one.
func BestVersioned(cands []Candidate, pattern string, threshold int) (Match, error) {
	type ranked struct {
		match  Match
		prefix int
	}
	var passing []ranked
	for _, c := range cands {
		score := fuzzy.PartialRatio(pattern, textutil.NormalizeStem(c.Stem))
		if score < threshold {
			continue
		}
		prefix := -1
		if m := numericPrefix.FindString(c.Stem); m != "" {
			if n, err := strconv.Atoi(m); err == nil {
				prefix = n
			}
		}
		passing = append(passing, ranked{match: Match{Candidate: c, Score: score}, prefix: prefix})
	}
	if len(passing) == 0 {
		return Match{}, ErrNoMatch
	}
	sort.SliceStable(passing, func(i, j int) bool {
		if passing[i].prefix != passing[j].prefix {
			return passing[i].prefix > passing[j].prefix
		}
		return passing[i].match.Score > passing[j].match.Score
	})
	return passing[0].match, nil
}
