package log

import "context"

// LogJob writes a single structured record describing a worker job run.
func LogJob(ctx context.Context, name, version, date string, err error) {
	fields := []Field{
		String("jobName", name),
		String("jobVersion", version),
		String("jobDate", date),
	}

	if err != nil {
		fields = append(fields, Err(err))
		Error(ctx, "[JOB]", fields...)
		return
	}

	Info(ctx, "[JOB]", fields...)
}
