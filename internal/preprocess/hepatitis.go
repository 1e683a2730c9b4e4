package preprocess

// HepatitisCdata数据集的固定清洗配置

const (
	// ClassColumn 类别列
	ClassColumn = "Category"

	// SexColumn 性别列
	SexColumn = "Sex"

	// IndexColumn 原始csv带的行号列，没有意义，始终删除
	IndexColumn = "Unnamed: 0"
)

// CategoryMerging 将细分类别合并为两类：献血者为0，患病者为1。
// 同时覆盖原始csv中的完整取值和已经缩写过的取值
var CategoryMerging = map[string]string{
	"0":                      "0",
	"0=Blood Donor":          "0",
	"0s":                     "0",
	"0s=suspect Blood Donor": "0",
	"1":                      "1",
	"1=Hepatitis":            "1",
	"2":                      "1",
	"2=Fibrosis":             "1",
	"3":                      "1",
	"3=Cirrhosis":            "1",
}

// SexRename 性别取值数字化
var SexRename = map[string]string{
	"m": "0",
	"f": "1",
}

// UselessColumns 对模型贡献度低的列，由Python Colab上的RandomForest实验得出。
// 将来可能加入CHE
var UselessColumns = []string{"Sex", "Age", "PROT", "CREA", "CHOL"}
