package model

// Reporter receives training progress from TrainOnDataset.
type Reporter interface {
	// PointLoss is called after each example's update with the loss
	// recomputed on the updated parameters.
	PointLoss(epoch, index int, loss float64)

	// EpochLoss is called once per epoch with the summed point losses.
	EpochLoss(epoch int, total float64)
}

// ReporterFuncs adapts plain functions to Reporter. Nil fields are skipped.
type ReporterFuncs struct {
	OnPoint func(epoch, index int, loss float64)
	OnEpoch func(epoch int, total float64)
}

// PointLoss implements Reporter.
func (f ReporterFuncs) PointLoss(epoch, index int, loss float64) {
	if f.OnPoint != nil {
		f.OnPoint(epoch, index, loss)
	}
}

// EpochLoss implements Reporter.
func (f ReporterFuncs) EpochLoss(epoch int, total float64) {
	if f.OnEpoch != nil {
		f.OnEpoch(epoch, total)
	}
}
