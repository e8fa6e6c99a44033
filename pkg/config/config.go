package config

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e
// opcionalmente arquivo). É um objeto explícito passado a cada componente;
// nenhum estado global.
type Config struct {
	App     AppConfig
	Store   StoreConfig
	Export  ExportConfig
	HTTP    HTTPConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// StoreConfig localização da planilha que atua como armazenamento.
type StoreConfig struct {
	// Arquivo caminho do workbook xlsx (a "base de dados").
	Arquivo string
}

// ExportConfig destinos e formato dos artefatos de análise e BI.
type ExportConfig struct {
	PastaCSV     string // CSVs crus (uma por aba)
	PastaPowerBI string // CSVs do modelo estrela
	ArquivoSQL   string // script DDL do modelo estrela
	ArquivoPNG   string // dashboard de seis painéis
	ArquivoPDF   string // relatório de KPIs em PDF

	// SeparadorCSV e DecimalVirgula controlam o dialeto dos CSVs de BI
	// (Power BI pt-BR espera ';' e vírgula decimal).
	SeparadorCSV   rune
	DecimalVirgula bool
}

// HTTPConfig configuração do servidor HTTP de consulta.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CaminhoCSV devolve o caminho de um CSV cru dentro da pasta configurada.
func (c ExportConfig) CaminhoCSV(nome string) string {
	return filepath.Join(c.PastaCSV, nome+".csv")
}

// CaminhoPowerBI devolve o caminho de um CSV do modelo estrela.
func (c ExportConfig) CaminhoPowerBI(nome string) string {
	return filepath.Join(c.PastaPowerBI, nome+".csv")
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo
// .env/config.env). As env vars têm prioridade. Nomes esperados: APP_ENV,
// ESTOQUE_ARQUIVO, EXPORT_PASTA_CSV, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.AutomaticEnv()

	sep := getString(v, "EXPORT_CSV_SEPARADOR", ";")
	if sep == "" {
		sep = ";"
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "controle-estoque"),
		},
		Store: StoreConfig{
			Arquivo: getString(v, "ESTOQUE_ARQUIVO", "Controle_Estoque.xlsx"),
		},
		Export: ExportConfig{
			PastaCSV:       getString(v, "EXPORT_PASTA_CSV", "dados_csv"),
			PastaPowerBI:   getString(v, "EXPORT_PASTA_POWER_BI", "dados_power_bi"),
			ArquivoSQL:     getString(v, "EXPORT_ARQUIVO_SQL", "modelo_estrela.sql"),
			ArquivoPNG:     getString(v, "EXPORT_ARQUIVO_PNG", "dashboard_estoque.png"),
			ArquivoPDF:     getString(v, "EXPORT_ARQUIVO_PDF", "relatorio_estoque.pdf"),
			SeparadorCSV:   rune(sep[0]),
			DecimalVirgula: getBool(v, "EXPORT_DECIMAL_VIRGULA", true),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
