package transform

import (
	"math"
)

// GaussianKDE строит оценку плотности с гауссовым ядром и шириной окна по правилу Скотта
// (h = σ · n^(-1/5), σ - выборочное стандартное отклонение).
// Возвращает false, если выборка вырождена: меньше двух точек или нулевой разброс.
func GaussianKDE(samples []float64) (func(x float64) float64, bool) {
	n := len(samples)
	if n < 2 {
		return nil, false
	}

	mean := 0.0
	for _, s := range samples {
		mean += s
	}
	mean /= float64(n)

	sumSq := 0.0
	for _, s := range samples {
		sumSq += (s - mean) * (s - mean)
	}
	std := math.Sqrt(sumSq / float64(n-1))
	if std < 1e-12 {
		return nil, false
	}

	h := std * math.Pow(float64(n), -0.2)
	norm := 1 / (float64(n) * h * math.Sqrt(2*math.Pi))

	points := append([]float64(nil), samples...)

	return func(x float64) float64 {
		sum := 0.0
		for _, p := range points {
			u := (x - p) / h
			sum += math.Exp(-0.5 * u * u)
		}
		return sum * norm
	}, true
}
