package dto

type Methodology struct {
	Title                string               `json:"title"`
	Description          string               `json:"description"`
	Components           []MethodComponent    `json:"components"`
	PredictionAlgorithms PredictionAlgorithms `json:"prediction_algorithms"`
	ScoringSystem        ScoringSystem        `json:"scoring_system"`
	DataSources          DataSources          `json:"data_sources"`
	Disclaimer           string               `json:"disclaimer"`
}

type MethodComponent struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	What           string         `json:"what"`
	How            string         `json:"how"`
	LLMsIntegrated []IntegratedLLM `json:"llms_integrated"`
}

type IntegratedLLM struct {
	Name                    string                   `json:"name"`
	Provider                string                   `json:"provider"`
	ModelType               string                   `json:"model_type"`
	Specialization          string                   `json:"specialization"`
	TrainingData            LLMTrainingData          `json:"training_data"`
	TechnicalSpecifications LLMTechnicalSpec         `json:"technical_specifications"`
	AlgorithmDetailedSteps  map[string]AlgorithmStep `json:"algorithm_detailed_steps"`
	IntegrationWorkflow     struct {
		Pipeline []string `json:"pipeline"`
	} `json:"integration_workflow"`
	Advantages        map[string]string `json:"advantages_over_traditional_methods"`
	Limitations       map[string]string `json:"limitations_and_considerations"`
	SetupRequirements LLMSetup          `json:"setup_requirements"`
}

type LLMTrainingData struct {
	CorpusSize       string `json:"corpus_size"`
	Sources          string `json:"sources"`
	TrainingApproach string `json:"training_approach"`
}

type LLMTechnicalSpec struct {
	Architecture   string `json:"architecture"`
	Parameters     string `json:"parameters"`
	Accuracy       string `json:"accuracy"`
	InferenceSpeed string `json:"inference_speed"`
}

type AlgorithmStep struct {
	Description        string `json:"description"`
	Process            string `json:"process"`
	Endpoint           string `json:"endpoint"`
	Example            string `json:"example"`
	CodeLocation       string `json:"code_location"`
	AttentionMechanism string `json:"attention_mechanism"`
	OutputFormat       string `json:"output_format"`
	Scenarios          string `json:"scenarios"`
	FallbackBehavior   string `json:"fallback_behavior"`
}

type LLMSetup struct {
	APIKey        string `json:"api_key"`
	ObtainingKey  string `json:"obtaining_key"`
	Configuration string `json:"configuration"`
	Documentation string `json:"documentation"`
}

type PredictionAlgorithm struct {
	Timeframe     string `json:"timeframe"`
	PrimaryFactor string `json:"primary_factor"`
	Methodology   string `json:"methodology"`
	Focus         string `json:"focus"`
}

type PredictionAlgorithms struct {
	ShortTerm PredictionAlgorithm `json:"short_term"`
	MidTerm   PredictionAlgorithm `json:"mid_term"`
	LongTerm  PredictionAlgorithm `json:"long_term"`
}

type ScoringSystem struct {
	TotalRange        string            `json:"total_range"`
	Baseline          *float64          `json:"baseline"`
	TechnicalPoints   *float64          `json:"technical_points"`
	FundamentalPoints *float64          `json:"fundamental_points"`
	Interpretation    map[string]string `json:"interpretation"`
}

type DataSources struct {
	Primary         string `json:"primary"`
	DataTypes       string `json:"data_types"`
	Limitations     string `json:"limitations"`
	UpdateFrequency string `json:"update_frequency"`
}
