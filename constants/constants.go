package constants

const MessageOptionHasNoValue = "Option does not have a value."
const MessageOptionHasValue = "Option has a value."

const EnumModeValue = "value"
const EnumModeName = "name"

const EnvPrefix = "OPTASSERT"
const ConfigFileEnv = "OPTASSERT_CONFIG"
const DefaultConfigFile = "./optassert.yml"
