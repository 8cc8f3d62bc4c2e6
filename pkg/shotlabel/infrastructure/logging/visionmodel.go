package logging

import (
	"fmt"
	"time"

	"kgeyst.com/shotlabel/pkg/common"
	"kgeyst.com/shotlabel/pkg/shotlabel/domain"
)

type visionModelDecorator struct {
	wrappedVisionModel domain.VisionModel
	logger             common.Logger
}

// NewVisionModelDecorator logs every inference call with its request ID and how long it took. Image data is never logged.
func NewVisionModelDecorator(wrappedVisionModel domain.VisionModel, logger common.Logger) domain.VisionModel {
	return &visionModelDecorator{
		wrappedVisionModel: wrappedVisionModel,
		logger:             logger,
	}
}

func (v *visionModelDecorator) Infer(request domain.InferenceRequest) (string, error) {
	t := time.Now()
	response, err := v.wrappedVisionModel.Infer(request)
	took := time.Since(t).Milliseconds()
	if err != nil {
		v.logger.Log(fmt.Sprintf("  inference %s (model %s) failed after %d ms", request.RequestID, request.Model, took))
		return "", err
	}
	v.logger.Log(fmt.Sprintf("  inference %s (model %s) took %d ms, %d chars", request.RequestID, request.Model, took, len(response)))
	return response, nil
}
