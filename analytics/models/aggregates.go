package models

// Aggregate - общий интерфейс результатов агрегации, которые умеет рисовать Renderer
type Aggregate interface {
	// AggregateName возвращает человекочитаемое имя агрегата
	AggregateName() string
	// IsEmpty сообщает, что рисовать нечего
	IsEmpty() bool
}

// GroupMean содержит среднее значение числовой колонки для одной группы
type GroupMean struct {
	Group string
	Mean  float64
	Count int
	Min   float64
	Max   float64
}

// GroupMeans - результат группового среднего. Порядок групп совпадает
// с порядком первого появления ключа в исходной таблице.
type GroupMeans struct {
	Name        string
	ValueColumn string
	GroupColumn string
	Groups      []GroupMean
}

func (g GroupMeans) AggregateName() string { return g.Name }
func (g GroupMeans) IsEmpty() bool         { return len(g.Groups) == 0 }

// HistogramBin - полуинтервал [Lower, Upper); последний бин включает Upper
type HistogramBin struct {
	Lower float64
	Upper float64
	Count int
}

// DensityPoint - точка сглаженной кривой плотности, масштабированной к счётчикам бинов
type DensityPoint struct {
	X float64
	Y float64
}

// Histogram - частотное распределение по равным бинам с кривой плотности
type Histogram struct {
	Name     string
	Column   string
	Min      float64
	Max      float64
	BinWidth float64
	Bins     []HistogramBin
	Density  []DensityPoint
	Total    int
}

func (h Histogram) AggregateName() string { return h.Name }
func (h Histogram) IsEmpty() bool         { return h.Total == 0 }

// CategoryShare - количество и доля одного значения категории
type CategoryShare struct {
	Value      string
	Count      int
	Proportion float64
}

// CategoryFrequency - частоты значений категориальной колонки.
// Значения упорядочены по убыванию количества, при равенстве - по первому появлению.
type CategoryFrequency struct {
	Name       string
	Column     string
	Categories []CategoryShare
	Total      int
}

func (c CategoryFrequency) AggregateName() string { return c.Name }
func (c CategoryFrequency) IsEmpty() bool         { return c.Total == 0 }
