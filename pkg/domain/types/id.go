package types

import "github.com/google/uuid"

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewReportRecordID() ReportRecordID {
	return ReportRecordID(uuid.NewString())
}
