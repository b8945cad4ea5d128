package warp

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

type InteractionResponse struct {
	ID                  string            `json:"id"`
	Timestamp           int64             `json:"timestamp"`
	Public              string            `json:"public"`
	Signature           string            `json:"signature"`
	Block               int64             `json:"block"`
	ValidatorSignatures []json.RawMessage `json:"validatorSignatures"`
}

type Status struct {
	Manifest      Manifest      `json:"manifest"`
	WorkersConfig WorkersConfig `json:"workersConfig"`
	QueuesTotals  QueuesTotals  `json:"queues_totals"`
	QueuesDetails QueuesDetails `json:"queues_details"`
}

type Manifest struct {
	GitCommitHash     string            `json:"gitCommitHash"`
	WarpSdkConfig     WarpSdkConfig     `json:"warpSdkConfig"`
	EvaluationOptions EvaluationOptions `json:"evaluationOptions"`
	Owner             string            `json:"owner"`
	WalletAddress     string            `json:"walletAddress"`
}

// WarpSdkConfig lists the package versions the node evaluates with.
type WarpSdkConfig struct {
	WarpContracts                         string `json:"warp-contracts"`
	WarpContractsLmdb                     string `json:"warp-contracts-lmdb"`
	WarpContractsEvaluationProgressPlugin string `json:"warp-contracts-evaluation-progress-plugin"`
	WarpContractsPluginNlp                string `json:"warp-contracts-plugin-nlp"`
	WarpContractsPluginEthers             string `json:"warp-contracts-plugin-ethers"`
	WarpContractsPluginSignature          string `json:"warp-contracts-plugin-signature"`
}

type EvaluationOptions struct {
	UseVM2                              *bool  `json:"useVM2,omitempty"`
	MaxCallDepth                        int64  `json:"maxCallDepth"`
	MaxInteractionEvaluationTimeSeconds int64  `json:"maxInteractionEvaluationTimeSeconds"`
	AllowBigInt                         bool   `json:"allowBigInt"`
	UnsafeClient                        string `json:"unsafeClient"`
	InternalWrites                      bool   `json:"internalWrites"`
}

type WorkersConfig struct {
	Register            int64 `json:"register"`
	Update              int64 `json:"update"`
	JobIdRefreshSeconds int64 `json:"jobIdRefreshSeconds"`
	MaxFailures         int64 `json:"maxFailures"`
	MaxStateSizeB       int64 `json:"maxStateSizeB"`
}

type QueuesTotals struct {
	Update   QueueTotal `json:"update"`
	Register QueueTotal `json:"register"`
}

type QueueTotal struct {
	Active  int64 `json:"active"`
	Waiting int64 `json:"waiting"`
}

type QueuesDetails struct {
	Update   QueueDetail `json:"update"`
	Register QueueDetail `json:"register"`
}

type QueueDetail struct {
	Active  []json.RawMessage `json:"active"`
	Waiting []json.RawMessage `json:"waiting"`
}

type BlacklistItem struct {
	ContractTxId string `json:"contract_tx_id"`
	Failures     int64  `json:"failures"`
}

type Cached struct {
	CachedContracts int64    `json:"cachedContracts"`
	Ids             []string `json:"ids"`
}

type ErrorsItem struct {
	ContractTxId      string `json:"contract_tx_id"`
	EvaluationOptions string `json:"evaluation_options"`
	SdkConfig         string `json:"sdk_config"`
	JobId             string `json:"job_id"`
	Failure           string `json:"failure"`
	Timestamp         string `json:"timestamp"`
}

type ContractRoot struct {
	Status       string          `json:"status"`
	ContractTxId string          `json:"contractTxId"`
	State        json.RawMessage `json:"state"`
	SortKey      string          `json:"sortKey"`
	Timestamp    string          `json:"timestamp"`
	Signature    string          `json:"signature"`
	StateHash    string          `json:"stateHash"`
	Manifest     Manifest        `json:"manifest"`
}

// StateValue looks up a gjson path in the evaluated contract state.
func (c *ContractRoot) StateValue(path string) gjson.Result {
	return gjson.GetBytes(c.State, path)
}

// ContractWithQuery is returned when the node evaluates a query against the
// state. Result and State are nil when the node omits them.
type ContractWithQuery struct {
	Status       string            `json:"status"`
	ContractTxId string            `json:"contractTxId"`
	Result       []json.RawMessage `json:"result,omitempty"`
	State        json.RawMessage   `json:"state,omitempty"`
	SortKey      string            `json:"sortKey"`
	Timestamp    string            `json:"timestamp"`
	Signature    string            `json:"signature"`
	StateHash    string            `json:"stateHash"`
	Manifest     Manifest          `json:"manifest"`
}

func (c *ContractWithQuery) StateValue(path string) gjson.Result {
	return gjson.GetBytes(c.State, path)
}

func (c *ContractWithQuery) ResultAt(index int) gjson.Result {
	if index < 0 || index >= len(c.Result) {
		return gjson.Result{}
	}
	return gjson.ParseBytes(c.Result[index])
}
