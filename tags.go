package warp

// Arweave tag names understood by Warp.
const (
	TagAppName          = "App-Name"
	TagAppVersion       = "App-Version"
	TagContractTxId     = "Contract"
	TagInput            = "Input"
	TagContentType      = "Content-Type"
	TagContractSrcTxId  = "Contract-Src"
	TagSdk              = "SDK"
	TagMinFee           = "Min-Fee"
	TagInitState        = "Init-State"
	TagInitStateTx      = "Init-State-TX"
	TagInteractWrite    = "Interact-Write"
	TagWasmMeta         = "Wasm-Meta"
	TagRequestVrf       = "Request-Vrf"
	TagSignatureType    = "Signature-Type"
	TagContractManifest = "Contract-Manifest"
)

const (
	SmartWeaveAction = "SmartWeaveAction"
	AppVersion       = "0.3.0"
	SdkName          = "Warp"
)
