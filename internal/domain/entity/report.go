package entity

type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

func (l Level) String() string {
	return string(l)
}

func (l Level) Valid() bool {
	return l == LevelAA || l == LevelAAA
}

type Mode string

const (
	ModeDynamic Mode = "dynamic"
	ModeStatic  Mode = "static"
)

type ComplianceOutcome struct {
	Passed        bool
	ContrastRatio float64
	RequiredRatio float64
	Reason        string
}

type ReportEntry struct {
	Markup         string `json:"markup" yaml:"markup"`
	PageIdentifier string `json:"page,omitempty" yaml:"page,omitempty"`
	Reason         string `json:"reason" yaml:"reason"`
}

type DocumentReport struct {
	PageIdentifier string        `json:"page" yaml:"page"`
	Entries        []ReportEntry `json:"entries" yaml:"entries"`
	TotalChecked   int           `json:"total_checked" yaml:"total_checked"`
	TotalFailed    int           `json:"total_failed" yaml:"total_failed"`
	LoadError      string        `json:"load_error,omitempty" yaml:"load_error,omitempty"`
}

type AuditSummary struct {
	Mode         Mode             `json:"mode" yaml:"mode"`
	Level        Level            `json:"level" yaml:"level"`
	Documents    []DocumentReport `json:"documents" yaml:"documents"`
	TotalChecked int              `json:"total_checked" yaml:"total_checked"`
	TotalFailed  int              `json:"total_failed" yaml:"total_failed"`
}

func (s *AuditSummary) Add(report DocumentReport) {
	s.Documents = append(s.Documents, report)
	s.TotalChecked += report.TotalChecked
	s.TotalFailed += report.TotalFailed
}
