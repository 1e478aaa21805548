package harness

// VerifySearchForTest exposes verifySearch to the external test package.
func VerifySearchForTest(s []int, target, got int) error {
	present := make(map[int]struct{}, len(s))
	for _, v := range s {
		present[v] = struct{}{}
	}
	return verifySearch(s, present, target, got)
}

// WithBeforeTrialForTest installs a hook that runs right before each trial.
func WithBeforeTrialForTest(fn func(key string)) Option {
	return func(r *Runner) {
		r.beforeTrial = fn
	}
}
