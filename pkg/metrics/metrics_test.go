package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSummaryRequest(t *testing.T) {
	before := testutil.ToFloat64(summaryRequestsTotal.WithLabelValues("bad_request"))
	RecordSummaryRequest("bad_request")
	RecordSummaryRequest("bad_request")
	assert.Equal(t, before+2, testutil.ToFloat64(summaryRequestsTotal.WithLabelValues("bad_request")))
}

func TestRecordStoreOperation(t *testing.T) {
	okBefore := testutil.ToFloat64(storeOperationsTotal.WithLabelValues("get", "ok"))
	errBefore := testutil.ToFloat64(storeOperationsTotal.WithLabelValues("get", "error"))

	RecordStoreOperation("get", nil)
	RecordStoreOperation("get", errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(storeOperationsTotal.WithLabelValues("get", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(storeOperationsTotal.WithLabelValues("get", "error")))
}

func TestObserveSummaryDuration(t *testing.T) {
	before := testutil.CollectAndCount(summaryDuration)
	ObserveSummaryDuration(0.02)
	assert.Equal(t, before, testutil.CollectAndCount(summaryDuration))
}
