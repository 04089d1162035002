package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayMetrics(title string, metrics []Metric)
	DisplayBars(title string, bars []Bar)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// Metric é um valor destacado no painel de métricas.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Bar representa uma barra horizontal em um gráfico de barras no terminal.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
