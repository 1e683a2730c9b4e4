package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// NativeExt 自描述表格格式的扩展名
const NativeExt = ".arff"

// ReadARFF 读取arff格式的数据。数据段中不带引号的?表示缺失值
func ReadARFF(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	table := NewTable("")
	inData := false
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		if !inData {
			err := parseHeaderLine(table, line, &inData)
			if err != nil {
				return nil, errors.Wrap(err, fmt.Sprintf("第%d行有误", lineNum))
			}
			continue
		}

		values, err := splitValues(line)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("第%d行数据有误", lineNum))
		}
		if len(values) != table.NumColumns() {
			return nil, fmt.Errorf("第%d行数据长度为%d，与列数%d不一致", lineNum, len(values), table.NumColumns())
		}

		cells := make([]Cell, len(values))
		for i, v := range values {
			cell, err := parseCell(table.Columns[i], v)
			if err != nil {
				return nil, errors.Wrap(err, fmt.Sprintf("第%d行第%d个数据有误", lineNum, i))
			}
			cells[i] = cell
		}
		if err := table.AddRow(cells); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "读取arff数据出错")
	}
	if !inData {
		return nil, errors.New("arff数据没有@data段")
	}

	return table, nil
}

func parseHeaderLine(table *Table, line string, inData *bool) error {
	lower := strings.ToLower(line)
	switch {
	case strings.HasPrefix(lower, "@relation"):
		name, _, err := takeToken(line[len("@relation"):])
		if err != nil {
			return errors.Wrap(err, "关系名有误")
		}
		table.Relation = name
	case strings.HasPrefix(lower, "@attribute"):
		col, err := parseAttribute(line[len("@attribute"):])
		if err != nil {
			return err
		}
		if err := table.AddColumn(col); err != nil {
			return err
		}
	case strings.HasPrefix(lower, "@data"):
		*inData = true
	default:
		return fmt.Errorf("无法识别的声明：%s", line)
	}
	return nil
}

func parseAttribute(s string) (*Column, error) {
	name, rest, err := takeToken(s)
	if err != nil {
		return nil, errors.Wrap(err, "属性名有误")
	}
	col := &Column{Name: name}

	typ := strings.TrimSpace(rest)
	if strings.HasPrefix(typ, "{") {
		if !strings.HasSuffix(typ, "}") {
			return nil, fmt.Errorf("属性%s的取值集合没有闭合", name)
		}
		values, err := splitValues(typ[1 : len(typ)-1])
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("属性%s的取值集合有误", name))
		}
		col.Kind = Nominal
		col.Categories = make([]string, len(values))
		for i, v := range values {
			col.Categories[i] = v.text
		}
		return col, nil
	}

	switch strings.ToLower(typ) {
	case "numeric", "real", "integer":
		col.Kind = Numeric
	case "string":
		col.Kind = String
	default:
		return nil, fmt.Errorf("属性%s的类型[%s]不支持", name, typ)
	}
	return col, nil
}

func parseCell(col *Column, v token) (Cell, error) {
	if v.text == "?" && !v.quoted {
		return MissingCell(), nil
	}
	if col.Kind == Numeric {
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil {
			return Cell{}, errors.Wrap(err, fmt.Sprintf("[%s]不是数字", v.text))
		}
		return NumberCell(f), nil
	}
	return StringCell(v.text), nil
}

// WriteARFF 将数据表写出为arff格式
func WriteARFF(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)

	relation := t.Relation
	if relation == "" {
		relation = "unnamed"
	}
	_, _ = fmt.Fprintf(bw, "@relation %s\n\n", quoteARFF(relation))

	for _, col := range t.Columns {
		switch col.Kind {
		case Numeric:
			// golearn的arff解析器只认real，不认numeric
			_, _ = fmt.Fprintf(bw, "@attribute %s real\n", quoteARFF(col.Name))
		case String:
			_, _ = fmt.Fprintf(bw, "@attribute %s string\n", quoteARFF(col.Name))
		case Nominal:
			values := make([]string, len(col.Categories))
			for i, v := range col.Categories {
				values[i] = quoteARFF(v)
			}
			_, _ = fmt.Fprintf(bw, "@attribute %s {%s}\n", quoteARFF(col.Name), strings.Join(values, ","))
		}
	}

	_, _ = fmt.Fprint(bw, "\n@data\n")
	for row := 0; row < t.NumRows(); row++ {
		fields := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			cell := col.Cells[row]
			if cell.Missing {
				fields[i] = "?"
			} else if col.Kind == Numeric {
				fields[i] = cell.Text(Numeric)
			} else {
				fields[i] = quoteARFF(cell.Str)
			}
		}
		_, _ = fmt.Fprintln(bw, strings.Join(fields, ","))
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "写出arff数据出错")
	}
	return nil
}

type token struct {
	text   string
	quoted bool
}

// splitValues 按逗号分割一行数据，支持单引号包裹含特殊字符的取值
func splitValues(line string) ([]token, error) {
	tokens := make([]token, 0, 16)
	i := 0
	n := len(line)

	for {
		for i < n && (line[i] == ' ' || line[i] == '\t') {
			i++
		}

		var tok token
		if i < n && line[i] == '\'' {
			i++
			sb := strings.Builder{}
			closed := false
			for i < n {
				ch := line[i]
				if ch == '\\' && i+1 < n {
					sb.WriteByte(line[i+1])
					i += 2
					continue
				}
				if ch == '\'' {
					closed = true
					i++
					break
				}
				sb.WriteByte(ch)
				i++
			}
			if !closed {
				return nil, errors.New("引号没有闭合")
			}
			tok = token{text: sb.String(), quoted: true}
			for i < n && (line[i] == ' ' || line[i] == '\t') {
				i++
			}
			if i < n && line[i] != ',' {
				return nil, fmt.Errorf("引号后存在多余字符：%s", line[i:])
			}
		} else {
			start := i
			for i < n && line[i] != ',' {
				i++
			}
			tok = token{text: strings.TrimSpace(line[start:i])}
		}
		tokens = append(tokens, tok)

		if i >= n {
			break
		}
		i++ // 跳过逗号
		if i >= n {
			tokens = append(tokens, token{})
			break
		}
	}

	return tokens, nil
}

// takeToken 取出开头的一个词，返回剩余部分。词可以用单引号包裹
func takeToken(s string) (string, string, error) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return "", "", errors.New("缺少内容")
	}

	if s[0] == '\'' {
		sb := strings.Builder{}
		for i := 1; i < len(s); i++ {
			if s[i] == '\\' && i+1 < len(s) {
				sb.WriteByte(s[i+1])
				i++
				continue
			}
			if s[i] == '\'' {
				return sb.String(), s[i+1:], nil
			}
			sb.WriteByte(s[i])
		}
		return "", "", errors.New("引号没有闭合")
	}

	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, "", nil
	}
	return s[:i], s[i:], nil
}

func quoteARFF(s string) string {
	if s == "" {
		return "''"
	}
	if s != "?" && !strings.ContainsAny(s, " ,{}'\"%\t\\") {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
