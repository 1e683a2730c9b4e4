package train

import (
	"testing"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/stretchr/testify/assert"
)

func TestDefaultNumFeatures(t *testing.T) {
	// Weka默认值：int(log2(预测属性数))+1
	assert.Equal(t, 1, defaultNumFeatures(1))
	assert.Equal(t, 3, defaultNumFeatures(4))
	assert.Equal(t, 4, defaultNumFeatures(12))
	assert.Equal(t, 1, defaultNumFeatures(0))
}

func TestEnsureModelSuffix(t *testing.T) {
	assert.Equal(t, "rf.model", EnsureModelSuffix("rf"))
	assert.Equal(t, "rf.model", EnsureModelSuffix("rf.model"))
	assert.Equal(t, "model/RandomForest_v1.model", EnsureModelSuffix("model/RandomForest_v1"))
}

func TestSetClassAttribute(t *testing.T) {
	instances, err := base.ParseDenseARFFToInstances("../../test/processed_sample.arff")
	assert.NoError(t, err)

	err = setClassAttribute(instances, "Category")
	assert.NoError(t, err)

	classAttrs := instances.AllClassAttributes()
	assert.Equal(t, 1, len(classAttrs))
	assert.Equal(t, "Category", classAttrs[0].GetName())
	assert.Equal(t, 2, numClasses(instances))

	// 再设置一次是无操作
	assert.NoError(t, setClassAttribute(instances, "Category"))

	/*
		不存在的列必须报错
	*/
	err = setClassAttribute(instances, "NoSuchColumn")
	assert.Error(t, err)
}

func TestSumConfusionMatrices(t *testing.T) {
	matrices := []evaluation.ConfusionMatrix{
		{
			"0": map[string]int{"0": 3, "1": 1},
			"1": map[string]int{"1": 2},
		},
		{
			"0": map[string]int{"0": 2},
			"1": map[string]int{"0": 1, "1": 4},
		},
	}

	total := sumConfusionMatrices(matrices)
	assert.Equal(t, 5, total["0"]["0"])
	assert.Equal(t, 1, total["0"]["1"])
	assert.Equal(t, 1, total["1"]["0"])
	assert.Equal(t, 6, total["1"]["1"])
}

func TestDatasetName(t *testing.T) {
	assert.Equal(t, "HepatitisCdata_processed", datasetName("../../test/HepatitisCdata_processed.arff"))
	assert.Equal(t, "data", datasetName("data.csv"))
}
