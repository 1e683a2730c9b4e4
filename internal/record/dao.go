package record

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type UpdateDao interface {
	SaveRunRecord(r *RunRecord) error
}

type QueryDao interface {
	QueryRunRecordsByDataset(dataset string) ([]*RunRecord, error)
	QueryAllRunRecords() ([]*RunRecord, error)
}

type Dao interface {
	DB() *gorm.DB
	UpdateDao
	QueryDao
}

type daoImpl struct {
	db     *gorm.DB
	logger *log.Logger
}

var _ Dao = &daoImpl{}

func NewDao(host string) (Dao, error) {
	databaseURL := fmt.Sprintf("root@tcp(%s)/hepatitis?charset=utf8mb4&parseTime=True&loc=Local",
		host)
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "", 0), logger.Config{
			LogLevel: logger.Silent,
		}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "连接数据库错误")
	}

	// 创建表格
	err = db.AutoMigrate(&RunRecord{})
	if err != nil {
		return nil, errors.Wrap(err, "创建表格时出现异常")
	}

	return &daoImpl{
		db:     db,
		logger: log.New(os.Stdout, "Dao: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix),
	}, nil
}

func (d *daoImpl) SaveRunRecord(r *RunRecord) error {
	d.logger.Printf("正在插入数据集%s的训练记录", r.Dataset)
	err := d.db.Create(r).Error
	if err != nil {
		return errors.Wrap(err, "插入训练记录出错")
	}
	return nil
}

func (d *daoImpl) QueryRunRecordsByDataset(dataset string) ([]*RunRecord, error) {
	records := make([]*RunRecord, 0)
	err := d.db.Where("dataset = ?", dataset).Order("created_at desc").Find(&records).Error
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("查询数据集%s的训练记录出错", dataset))
	}
	return records, nil
}

func (d *daoImpl) QueryAllRunRecords() ([]*RunRecord, error) {
	records := make([]*RunRecord, 0)
	err := d.db.Order("created_at desc").Find(&records).Error
	if err != nil {
		return nil, errors.Wrap(err, "查询所有训练记录出错")
	}
	return records, nil
}

func (d *daoImpl) DB() *gorm.DB {
	return d.db
}
