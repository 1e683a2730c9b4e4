package train

import (
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/ensemble"
	"github.com/sjwhitworth/golearn/evaluation"
)

// classColumn 类别列。与预处理工具各自独立使用
const classColumn = "Category"

// ModelExt 模型文件扩展名
const ModelExt = ".model"

type Config struct {
	// NumFeatures 每次分裂考虑的特征数。0表示使用log2(特征数)+1
	NumFeatures int

	// MaxDepth 树的最大深度，0表示不限制。底层随机森林暂不支持，仅记录
	MaxDepth int

	// NumTrees 森林中树的数量
	NumTrees int

	// Seed 训练随机数种子
	Seed int

	// CVFolds 交叉验证折数
	CVFolds int

	// CVSeed 交叉验证随机数种子
	CVSeed int

	// ModelPath 模型保存路径，为空时不保存模型
	ModelPath string
}

func DefaultConfig() *Config {
	return &Config{
		NumFeatures: 0,
		MaxDepth:    3,
		NumTrees:    300,
		Seed:        1,
		CVFolds:     10,
		CVSeed:      0,
	}
}

// Report 一次训练的评估结果
type Report struct {
	Dataset          string
	NumInstances     int
	NumAttributes    int
	NumClasses       int
	NumFeatures      int
	Config           *Config
	AccuracyMean     float64
	AccuracyVariance float64
	Confusion        evaluation.ConfusionMatrix
	ClassDetails     string
	ModelPath        string
}

// Train 加载数据集，以Category列为类别进行k折交叉验证，并在out上输出评估结果。
// 指定了模型保存路径时，在整个数据集上重新训练并保存模型。
// 注意保存的模型使用了全部数据训练，与交叉验证指标并不对应
func Train(path string, cfg *Config, out io.Writer) (*Report, error) {
	log.Println("正在加载数据集")
	instances, err := loadInstances(path)
	if err != nil {
		return nil, errors.Wrap(err, "加载数据集失败")
	}

	if err := setClassAttribute(instances, classColumn); err != nil {
		return nil, err
	}

	numAttrs := len(instances.AllAttributes())
	_, numRows := instances.Size()

	k := cfg.NumFeatures
	if k <= 0 {
		k = defaultNumFeatures(numAttrs - 1)
	}
	if cfg.MaxDepth != 0 {
		log.Println("底层随机森林不支持限制树的深度，depth参数仅作记录")
	}

	forest := ensemble.NewRandomForest(cfg.NumTrees, k)

	log.Printf("正在进行%d折交叉验证\n", cfg.CVFolds)
	rand.Seed(int64(cfg.CVSeed))
	matrices, err := evaluation.GenerateCrossFoldValidationConfusionMatrices(instances, forest, cfg.CVFolds)
	if err != nil {
		return nil, errors.Wrap(err, "交叉验证出错")
	}

	mean, variance := evaluation.GetCrossValidatedMetric(matrices, evaluation.GetAccuracy)
	total := sumConfusionMatrices(matrices)

	report := &Report{
		Dataset:          datasetName(path),
		NumInstances:     numRows,
		NumAttributes:    numAttrs,
		NumClasses:       numClasses(instances),
		NumFeatures:      k,
		Config:           cfg,
		AccuracyMean:     mean,
		AccuracyVariance: variance,
		Confusion:        total,
		ClassDetails:     evaluation.GetSummary(total),
	}

	if out != nil {
		report.Write(out)
	}

	if cfg.ModelPath != "" {
		modelPath := EnsureModelSuffix(cfg.ModelPath)
		log.Println("正在整个数据集上训练模型")
		log.Println("警告：没有独立的测试集，保存的模型使用全部数据训练，与上面的交叉验证指标并不对应")
		rand.Seed(int64(cfg.Seed))
		if err := forest.Fit(instances); err != nil {
			return nil, errors.Wrap(err, "训练模型出错")
		}
		log.Println("正在保存模型到" + modelPath)
		if err := forest.Save(modelPath); err != nil {
			return nil, errors.Wrap(err, "保存模型出错")
		}
		report.ModelPath = modelPath
	}

	return report, nil
}

// Write 按原版格式输出评估报告
func (r *Report) Write(out io.Writer) {
	_, _ = fmt.Fprintln(out, "===== Random Forest =====")
	_, _ = fmt.Fprintln(out, "Dataset:", r.Dataset)
	_, _ = fmt.Fprintln(out, "Number of instances:", r.NumInstances)
	_, _ = fmt.Fprintln(out, "Number of attributes:", r.NumAttributes)
	_, _ = fmt.Fprintln(out, "Number of classes:", r.NumClasses)
	_, _ = fmt.Fprintln(out, "Number of CV Folds:", r.Config.CVFolds)
	_, _ = fmt.Fprintln(out, "CV Seed:", r.Config.CVSeed)
	_, _ = fmt.Fprintf(out, "Options: -I %d -K %d -depth %d -S %d\n",
		r.Config.NumTrees, r.NumFeatures, r.Config.MaxDepth, r.Config.Seed)

	_, _ = fmt.Fprintf(out, "\n=== %d-fold Cross-validation ===\n", r.Config.CVFolds)
	_, _ = fmt.Fprintf(out, "Accuracy mean: %.3f\n", r.AccuracyMean)
	_, _ = fmt.Fprintf(out, "Accuracy variance: %.3f\n", r.AccuracyVariance)
	_, _ = fmt.Fprintf(out, "Accuracy standard deviation: %.3f\n", math.Sqrt(r.AccuracyVariance))

	_, _ = fmt.Fprintln(out, "\n=== Confusion Matrix ===")
	writeConfusionMatrix(out, r.Confusion)

	_, _ = fmt.Fprintln(out, "\n=== Class Details ===")
	_, _ = fmt.Fprintln(out, r.ClassDetails)
}

// defaultNumFeatures Weka的默认特征数：log2(预测属性数)+1
func defaultNumFeatures(numPredictors int) int {
	if numPredictors < 1 {
		return 1
	}
	return int(math.Log2(float64(numPredictors))) + 1
}

// EnsureModelSuffix 保证模型路径以.model结尾
func EnsureModelSuffix(path string) string {
	if !strings.HasSuffix(path, ModelExt) {
		return path + ModelExt
	}
	return path
}

func loadInstances(path string) (*base.DenseInstances, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return base.ParseCSVToInstances(path, true)
	}
	return base.ParseDenseARFFToInstances(path)
}

// setClassAttribute 将名为name的列设置为类别列，按列名查找而不是位置
func setClassAttribute(instances *base.DenseInstances, name string) error {
	var target base.Attribute
	for _, attr := range instances.AllAttributes() {
		if attr.GetName() == name {
			target = attr
			break
		}
	}
	if target == nil {
		return fmt.Errorf("数据集中没有名为%s的列", name)
	}

	for _, attr := range instances.AllClassAttributes() {
		if attr.GetName() == name {
			return nil
		}
	}
	for _, attr := range instances.AllClassAttributes() {
		if err := instances.RemoveClassAttribute(attr); err != nil {
			return errors.Wrap(err, "取消原类别列出错")
		}
	}
	if err := instances.AddClassAttribute(target); err != nil {
		return errors.Wrap(err, "设置类别列出错")
	}
	return nil
}

func numClasses(instances *base.DenseInstances) int {
	attrs := instances.AllClassAttributes()
	if len(attrs) == 0 {
		return 0
	}
	if cat, ok := attrs[0].(*base.CategoricalAttribute); ok {
		return len(cat.GetValues())
	}
	return 0
}

// sumConfusionMatrices 将各折的混淆矩阵累加为一个
func sumConfusionMatrices(matrices []evaluation.ConfusionMatrix) evaluation.ConfusionMatrix {
	total := make(evaluation.ConfusionMatrix)
	for _, matrix := range matrices {
		for ref, row := range matrix {
			if total[ref] == nil {
				total[ref] = make(map[string]int)
			}
			for predicted, count := range row {
				total[ref][predicted] += count
			}
		}
	}
	return total
}

func writeConfusionMatrix(out io.Writer, matrix evaluation.ConfusionMatrix) {
	classes := make([]string, 0, len(matrix))
	for ref := range matrix {
		classes = append(classes, ref)
	}
	sort.Strings(classes)

	_, _ = fmt.Fprintf(out, "%12s", "ref\\pred")
	for _, c := range classes {
		_, _ = fmt.Fprintf(out, "%12s", c)
	}
	_, _ = fmt.Fprintln(out)
	for _, ref := range classes {
		_, _ = fmt.Fprintf(out, "%12s", ref)
		for _, predicted := range classes {
			_, _ = fmt.Fprintf(out, "%12d", matrix[ref][predicted])
		}
		_, _ = fmt.Fprintln(out)
	}
}

func datasetName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
