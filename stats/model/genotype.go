package model

//
// 双文件比对模型定义
//
// 说明：
// - Genotype 由 scanner.ParseGenotype 产生，对应一行 "rsid chromosome position allele1 allele2"。
// - 只有常染色体 1..22 参与比对；24 号染色体另行计数用于性别推断。
//

// Autosomes 常染色体数量
const Autosomes = 22

// Genotype 一条带两个等位基因的数据行
type Genotype struct {
	Chromosome string // 染色体编号（第 2 列）
	Allele1    string // 第 4 列
	Allele2    string // 第 5 列
	Line       int    // 源文件中的行号（从 1 开始）
}

// AutosomeStats 单条常染色体的错配统计
type AutosomeStats struct {
	Pairs           int `json:"pairs"`            // 比对的位点数
	Allele1Mismatch int `json:"allele1_mismatch"` // allele1 不在对方两个等位基因中的次数
	Allele2Mismatch int `json:"allele2_mismatch"` // allele2 不在对方两个等位基因中的次数
}

// AvgError 取两个等位基因中较小的错配率；无位点时为 0
func (s AutosomeStats) AvgError() float64 {
	if s.Pairs == 0 {
		return 0
	}
	return float64(min(s.Allele1Mismatch, s.Allele2Mismatch)) / float64(s.Pairs)
}

// Add 比较本方与对方的一个位点
func (s *AutosomeStats) Add(own, other Genotype) {
	s.Pairs++
	if own.Allele1 != other.Allele1 && own.Allele1 != other.Allele2 {
		s.Allele1Mismatch++
	}
	if own.Allele2 != other.Allele1 && own.Allele2 != other.Allele2 {
		s.Allele2Mismatch++
	}
}

// MatchPct 由 22 条常染色体的平均错配率换算出的匹配百分比
func MatchPct(stats [Autosomes]AutosomeStats) float64 {
	var sum float64
	for _, s := range stats {
		sum += s.AvgError()
	}
	return 100 - (sum/Autosomes)*10
}

// Relation 亲缘关系判定
type Relation string

const (
	RelationNone       Relation = "none"
	RelationChild      Relation = "child"
	RelationGrandchild Relation = "grandchild"
)

const (
	RelatedPct = 98.9 // 低于该值视为无亲缘关系
	ChildPct   = 99.0 // 不低于该值视为亲子
)

// Classify 按匹配百分比判定关系
func Classify(pct float64) Relation {
	switch {
	case pct >= ChildPct:
		return RelationChild
	case pct >= RelatedPct:
		return RelationGrandchild
	default:
		return RelationNone
	}
}

// Comparison 两个文件的比对结果；First 为第一个文件对第二个文件的统计
type Comparison struct {
	First       [Autosomes]AutosomeStats `json:"first"`
	Second      [Autosomes]AutosomeStats `json:"second"`
	FirstChr24  Counts                   `json:"first_chr24"`
	SecondChr24 Counts                   `json:"second_chr24"`
	Pairs       int                      `json:"pairs"`   // 读取的数据行对数
	Skipped     int                      `json:"skipped"` // skip 策略下丢弃的行对
}

// MatchPct 第一个文件对第二个文件的匹配百分比
func (c Comparison) MatchPct() float64 { return MatchPct(c.First) }

// Relation 第一个文件相对第二个文件的关系
func (c Comparison) Relation() Relation { return Classify(c.MatchPct()) }
