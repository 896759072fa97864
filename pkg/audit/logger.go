package audit

import (
	"go.uber.org/zap"
)

type LoggerAudit struct {
	Logger *zap.SugaredLogger
}

var _ Audit = (*LoggerAudit)(nil)

func NewLoggerAudit(logger *zap.SugaredLogger) *LoggerAudit {
	return &LoggerAudit{Logger: logger}
}

func (d *LoggerAudit) Write(q *QueryData) error {
	filters := q.Filters
	if filters == nil {
		filters = map[string]string{}
	}

	d.Logger.Infow("AUDIT",
		"Type", q.Type,
		"Filters", filters,
		"Client", q.Client,
		"Timestamp", q.Timestamp,
	)
	return nil
}
