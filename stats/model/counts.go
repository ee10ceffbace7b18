package model

//
// 标记记录与计数模型定义
//
// 说明：
// - 本文件仅定义数据结构，不包含扫描逻辑。
// - Record 由 scanner.ParseRecord 产生，只保留聚合需要的两个字段。
//

import "strconv"

// Record 一条非注释数据行
type Record struct {
	Chromosome string // 染色体编号（第 2 列）
	Indicator  string // 空值标记（第 4 列）
	Line       int    // 源文件中的行号（从 1 开始）
}

// Filter 聚合条件
type Filter struct {
	Chromosome string // 目标染色体，如 "24"
	EmptyValue string // 视为空的取值，如 "0"
}

// Counts 单次扫描的计数结果
type Counts struct {
	Empty   int `json:"empty"`   // 目标染色体中空值记录数
	Total   int `json:"total"`   // 目标染色体记录总数
	Skipped int `json:"skipped"` // skip 策略下丢弃的格式错误行
}

// Add 累加一条记录
func (c *Counts) Add(rec Record, f Filter) {
	if rec.Chromosome != f.Chromosome {
		return
	}
	c.Total++
	if rec.Indicator == f.EmptyValue {
		c.Empty++
	}
}

// String 输出 "empty/total"
func (c Counts) String() string {
	return strconv.Itoa(c.Empty) + "/" + strconv.Itoa(c.Total)
}
