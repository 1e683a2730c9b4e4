package record

import "gorm.io/gorm"

// RunRecord 一次训练的参数与交叉验证指标
type RunRecord struct {
	gorm.Model
	Dataset        string `gorm:"index"`
	NumInstances   int
	NumTrees       int
	NumFeatures    int
	MaxDepth       int
	Seed           int
	CVFolds        int
	CVSeed         int
	AccuracyMean   float64
	AccuracyStdDev float64
	ModelPath      string
}
