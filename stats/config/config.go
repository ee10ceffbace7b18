package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"markerscan/stats/scanner"
)

// Config 应用配置
type Config struct {
	Chromosome      string // 目标染色体
	EmptyValue      string // 空值标记
	MalformedPolicy string // abort | skip
	MaleThreshold   int    // 空值记录数超过该值判定为男性
}

// Load 加载配置；envPath 为空或文件不存在时只读取进程环境变量
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	threshold, _ := strconv.Atoi(os.Getenv("MALE_THRESHOLD"))
	if threshold <= 0 {
		threshold = scanner.DefaultMaleThreshold
	}

	def := scanner.DefaultOptions()
	return &Config{
		Chromosome:      getenv("TARGET_CHROMOSOME", def.Chromosome),
		EmptyValue:      getenv("EMPTY_VALUE", def.EmptyValue),
		MalformedPolicy: getenv("MALFORMED_POLICY", def.Policy.String()),
		MaleThreshold:   threshold,
	}, nil
}

// ScanOptions 转换为扫描选项
func (c *Config) ScanOptions() (scanner.Options, error) {
	policy, err := scanner.ParsePolicy(c.MalformedPolicy)
	if err != nil {
		return scanner.Options{}, err
	}
	return scanner.Options{
		Chromosome: c.Chromosome,
		EmptyValue: c.EmptyValue,
		Policy:     policy,
	}, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
