package typer

import (
	"math"
	"math/rand"

	_const "survey_bot/internal/const"
)

// LogNormalParams 由目标WPM与标准差求对数正态分布参数 (mu, sigma)
// 平均击键间隔按每词5字符换算: meanIKI = 60000 / (wpm * 5) 毫秒
// 变异系数 cv = wpmStdDev / wpm; sigma^2 = ln(1+cv^2); mu = ln(meanIKI) - sigma^2/2
// mu 的修正项使分布中位数落在目标间隔附近
func LogNormalParams(wpm, wpmStdDev float64) (mu, sigma float64) {
	charsPerMinute := wpm * _const.CharsPerWord
	meanIKIMs := _const.MsPerMinute / charsPerMinute

	cv := wpmStdDev / wpm
	sigma2 := math.Log(1 + cv*cv)
	sigma = math.Sqrt(sigma2)
	mu = math.Log(meanIKIMs) - sigma2/2
	return mu, sigma
}

// SampleIKI 从对数正态分布采样一次击键间隔（毫秒）
// 永不返回零或负值
func SampleIKI(rng *rand.Rand, wpm, wpmStdDev float64) float64 {
	mu, sigma := LogNormalParams(wpm, wpmStdDev)
	v := math.Exp(mu + sigma*rng.NormFloat64())
	if v < 1 {
		v = 1
	}
	return v
}

// NearbyKey 返回QWERTY键盘上与k物理相邻的随机一个键
// 大小写跟随原键；没有相邻键映射的字符（空白、生僻标点）返回 ok=false，
// 调用方直接跳过打错注入，不算错误
func NearbyKey(rng *rand.Rand, k rune) (rune, bool) {
	lower := toLower(k)
	neighbors, exists := _const.QwertyNeighbors[lower]
	if !exists || len(neighbors) == 0 {
		return 0, false
	}
	picked := neighbors[rng.Intn(len(neighbors))]
	if lower != k {
		return toUpper(picked), true
	}
	return picked, true
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
