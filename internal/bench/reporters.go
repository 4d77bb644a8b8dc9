package bench

// NullReporter is a no-op implementation of Reporter.
type NullReporter struct{}

func (NullReporter) ReportEnvironment(Environment) {}
func (NullReporter) ReportSizeStart(int)           {}
func (NullReporter) ReportTrialStart(int, int)     {}
func (NullReporter) ReportTrial(Result)            {}
func (NullReporter) ReportSummary(Summary)         {}

// MultiReporter fans every event out to each of its reporters in order.
type MultiReporter []Reporter

func (m MultiReporter) ReportEnvironment(env Environment) {
	for _, r := range m {
		r.ReportEnvironment(env)
	}
}

func (m MultiReporter) ReportSizeStart(size int) {
	for _, r := range m {
		r.ReportSizeStart(size)
	}
}

func (m MultiReporter) ReportTrialStart(size, threads int) {
	for _, r := range m {
		r.ReportTrialStart(size, threads)
	}
}

func (m MultiReporter) ReportTrial(result Result) {
	for _, r := range m {
		r.ReportTrial(result)
	}
}

func (m MultiReporter) ReportSummary(summary Summary) {
	for _, r := range m {
		r.ReportSummary(summary)
	}
}

var (
	_ Reporter = NullReporter{}
	_ Reporter = MultiReporter(nil)
)
