package flag

// Job carries the command line arguments of one worker job run.
type Job struct {
	JobName string
	Version string
	Date    string
}
