package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/spf13/pflag"
)

// planFlag is a --plan value parsed case-insensitively. An unset flag
// yields a nil plan so the profile plan applies.
type planFlag struct {
	plan *domain.Plan
}

var _ pflag.Value = (*planFlag)(nil)

func (f *planFlag) String() string {
	if f.plan == nil {
		return ""
	}
	return string(*f.plan)
}

func (f *planFlag) Set(s string) error {
	p, err := domain.ParsePlan(s)
	if err != nil {
		return err
	}
	f.plan = &p
	return nil
}

func (f *planFlag) Type() string { return "plan" }

// Plan returns the parsed plan or nil.
func (f *planFlag) Plan() *domain.Plan { return f.plan }

// parseAnswers turns repeated "question=option" pairs into an answer map.
// A later pair for the same question wins.
func parseAnswers(pairs []string) (map[string]string, error) {
	answers := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		q, opt, ok := strings.Cut(pair, "=")
		q, opt = strings.TrimSpace(q), strings.TrimSpace(opt)
		if !ok || q == "" || opt == "" {
			return nil, fmt.Errorf("invalid --answer %q (want question=option)", pair)
		}
		answers[q] = opt
	}
	return answers, nil
}
