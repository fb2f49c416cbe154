package model

// AppConfig holds the optional on-disk defaults layered under a job's
// "parameters" object: any field a job document omits falls back to
// the value here (see LoadParameters; a zero distance counts as omitted).
type AppConfig struct {
	DefaultPartToPartDistance  float64       `yaml:"default_part_to_part_distance"`
	DefaultPartToSheetDistance float64       `yaml:"default_part_to_sheet_distance"`
	DefaultBestFitScore        ScoreStrategy `yaml:"default_best_fit_score"`
}

// DefaultAppConfig returns an AppConfig populated with the same values
// DefaultParameters() uses, so an absent config file behaves exactly
// like no config file at all.
func DefaultAppConfig() AppConfig {
	d := DefaultParameters()
	return AppConfig{
		DefaultPartToPartDistance:  d.PartToPartDistance,
		DefaultPartToSheetDistance: d.PartToSheetDistance,
		DefaultBestFitScore:        d.BestFitScore,
	}
}

// ApplyToParameters fills in an empty BestFitScore of p from the
// config's default. A job document's explicit score always wins.
func (c AppConfig) ApplyToParameters(p *Parameters) {
	if p.BestFitScore == "" {
		p.BestFitScore = c.DefaultBestFitScore
	}
	// PartToPartDistance/PartToSheetDistance are left as they are here:
	// nothing on the wire distinguishes "unset" from "explicitly zero".
	// LoadParameters does replace zero distances with the config's values.
}

// LoadParameters merges a job's parameters with the AppConfig defaults:
// zero-valued numeric fields and an empty BestFitScore are replaced by
// the config's values.
func LoadParameters(jobParams Parameters, cfg AppConfig) Parameters {
	out := jobParams
	if out.BestFitScore == "" {
		out.BestFitScore = cfg.DefaultBestFitScore
	}
	if out.PartToPartDistance == 0 {
		out.PartToPartDistance = cfg.DefaultPartToPartDistance
	}
	if out.PartToSheetDistance == 0 {
		out.PartToSheetDistance = cfg.DefaultPartToSheetDistance
	}
	return out
}
