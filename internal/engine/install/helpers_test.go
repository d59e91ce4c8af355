package install_test

import (
	"context"

	"go.parcel.ch/parcel/internal/core/ports"
	"go.parcel.ch/parcel/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// newTracerMock builds a tracer whose spans accept anything. Tests that do not
// assert on telemetry use it to keep expectations quiet.
func newTracerMock(ctrl *gomock.Controller) *mocks.MockTracer {
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()
	tracer.EXPECT().Shutdown(gomock.Any()).AnyTimes()
	return tracer
}

// newLoggerMock builds a logger that swallows all output.
func newLoggerMock(ctrl *gomock.Controller) *mocks.MockLogger {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func boolPtr(v bool) *bool {
	return &v
}
