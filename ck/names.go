package ck

import (
	"strconv"
	"strings"
)

// String returns the mnemonic of the status code, or "Unknown".
func (rv RV) String() string { return lookup(rvNames, rv) }

// String returns the mnemonic of the mechanism type, or "Unknown".
func (m MechanismType) String() string { return lookup(mechanismTypeNames, m) }

// String returns the mnemonic of the attribute type, or "Unknown".
func (a AttributeType) String() string { return lookup(attributeTypeNames, a) }

// String returns the mnemonic of the user type, or "Unknown".
func (u UserType) String() string { return lookup(userTypeNames, u) }

// String returns the mnemonic of the session state, or "Unknown".
func (s State) String() string { return lookup(stateNames, s) }

func (c ObjectClass) String() string { return lookup(objectClassNames, c) }

func (k KeyType) String() string { return lookup(keyTypeNames, k) }

func lookup[K comparable](m map[K]string, k K) string {
	if s, ok := m[k]; ok {
		return s
	}
	return "Unknown"
}

// ParseMechanism resolves a mechanism by its mnemonic, with or without the
// CKM_ prefix, or by its numeric value in any base strconv understands.
func ParseMechanism(s string) (MechanismType, bool) {
	if len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return MechanismType(n), true
	}
	s = strings.ToUpper(s)
	if m, ok := mechanismsByName[s]; ok {
		return m, true
	}
	m, ok := mechanismsByName["CKM_"+s]
	return m, ok
}

var mechanismsByName = func() map[string]MechanismType {
	m := make(map[string]MechanismType, len(mechanismTypeNames))
	for k, v := range mechanismTypeNames {
		m[v] = k
	}
	return m
}()

var rvNames = map[RV]string{
	CKR_OK:                               "CKR_OK",
	CKR_CANCEL:                           "CKR_CANCEL",
	CKR_HOST_MEMORY:                      "CKR_HOST_MEMORY",
	CKR_SLOT_ID_INVALID:                  "CKR_SLOT_ID_INVALID",
	CKR_GENERAL_ERROR:                    "CKR_GENERAL_ERROR",
	CKR_FUNCTION_FAILED:                  "CKR_FUNCTION_FAILED",
	CKR_ARGUMENTS_BAD:                    "CKR_ARGUMENTS_BAD",
	CKR_NO_EVENT:                         "CKR_NO_EVENT",
	CKR_NEED_TO_CREATE_THREADS:           "CKR_NEED_TO_CREATE_THREADS",
	CKR_CANT_LOCK:                        "CKR_CANT_LOCK",
	CKR_ATTRIBUTE_READ_ONLY:              "CKR_ATTRIBUTE_READ_ONLY",
	CKR_ATTRIBUTE_SENSITIVE:              "CKR_ATTRIBUTE_SENSITIVE",
	CKR_ATTRIBUTE_TYPE_INVALID:           "CKR_ATTRIBUTE_TYPE_INVALID",
	CKR_ATTRIBUTE_VALUE_INVALID:          "CKR_ATTRIBUTE_VALUE_INVALID",
	CKR_DATA_INVALID:                     "CKR_DATA_INVALID",
	CKR_DATA_LEN_RANGE:                   "CKR_DATA_LEN_RANGE",
	CKR_DEVICE_ERROR:                     "CKR_DEVICE_ERROR",
	CKR_DEVICE_MEMORY:                    "CKR_DEVICE_MEMORY",
	CKR_DEVICE_REMOVED:                   "CKR_DEVICE_REMOVED",
	CKR_ENCRYPTED_DATA_INVALID:           "CKR_ENCRYPTED_DATA_INVALID",
	CKR_ENCRYPTED_DATA_LEN_RANGE:         "CKR_ENCRYPTED_DATA_LEN_RANGE",
	CKR_FUNCTION_CANCELED:                "CKR_FUNCTION_CANCELED",
	CKR_FUNCTION_NOT_PARALLEL:            "CKR_FUNCTION_NOT_PARALLEL",
	CKR_FUNCTION_NOT_SUPPORTED:           "CKR_FUNCTION_NOT_SUPPORTED",
	CKR_KEY_HANDLE_INVALID:               "CKR_KEY_HANDLE_INVALID",
	CKR_KEY_SIZE_RANGE:                   "CKR_KEY_SIZE_RANGE",
	CKR_KEY_TYPE_INCONSISTENT:            "CKR_KEY_TYPE_INCONSISTENT",
	CKR_KEY_NOT_NEEDED:                   "CKR_KEY_NOT_NEEDED",
	CKR_KEY_CHANGED:                      "CKR_KEY_CHANGED",
	CKR_KEY_NEEDED:                       "CKR_KEY_NEEDED",
	CKR_KEY_INDIGESTIBLE:                 "CKR_KEY_INDIGESTIBLE",
	CKR_KEY_FUNCTION_NOT_PERMITTED:       "CKR_KEY_FUNCTION_NOT_PERMITTED",
	CKR_KEY_NOT_WRAPPABLE:                "CKR_KEY_NOT_WRAPPABLE",
	CKR_KEY_UNEXTRACTABLE:                "CKR_KEY_UNEXTRACTABLE",
	CKR_MECHANISM_INVALID:                "CKR_MECHANISM_INVALID",
	CKR_MECHANISM_PARAM_INVALID:          "CKR_MECHANISM_PARAM_INVALID",
	CKR_OBJECT_HANDLE_INVALID:            "CKR_OBJECT_HANDLE_INVALID",
	CKR_OPERATION_ACTIVE:                 "CKR_OPERATION_ACTIVE",
	CKR_OPERATION_NOT_INITIALIZED:        "CKR_OPERATION_NOT_INITIALIZED",
	CKR_PIN_INCORRECT:                    "CKR_PIN_INCORRECT",
	CKR_PIN_INVALID:                      "CKR_PIN_INVALID",
	CKR_PIN_LEN_RANGE:                    "CKR_PIN_LEN_RANGE",
	CKR_PIN_EXPIRED:                      "CKR_PIN_EXPIRED",
	CKR_PIN_LOCKED:                       "CKR_PIN_LOCKED",
	CKR_SESSION_CLOSED:                   "CKR_SESSION_CLOSED",
	CKR_SESSION_COUNT:                    "CKR_SESSION_COUNT",
	CKR_SESSION_HANDLE_INVALID:           "CKR_SESSION_HANDLE_INVALID",
	CKR_SESSION_PARALLEL_NOT_SUPPORTED:   "CKR_SESSION_PARALLEL_NOT_SUPPORTED",
	CKR_SESSION_READ_ONLY:                "CKR_SESSION_READ_ONLY",
	CKR_SESSION_EXISTS:                   "CKR_SESSION_EXISTS",
	CKR_SESSION_READ_ONLY_EXISTS:         "CKR_SESSION_READ_ONLY_EXISTS",
	CKR_SESSION_READ_WRITE_SO_EXISTS:     "CKR_SESSION_READ_WRITE_SO_EXISTS",
	CKR_SIGNATURE_INVALID:                "CKR_SIGNATURE_INVALID",
	CKR_SIGNATURE_LEN_RANGE:              "CKR_SIGNATURE_LEN_RANGE",
	CKR_TEMPLATE_INCOMPLETE:              "CKR_TEMPLATE_INCOMPLETE",
	CKR_TEMPLATE_INCONSISTENT:            "CKR_TEMPLATE_INCONSISTENT",
	CKR_TOKEN_NOT_PRESENT:                "CKR_TOKEN_NOT_PRESENT",
	CKR_TOKEN_NOT_RECOGNIZED:             "CKR_TOKEN_NOT_RECOGNIZED",
	CKR_TOKEN_WRITE_PROTECTED:            "CKR_TOKEN_WRITE_PROTECTED",
	CKR_UNWRAPPING_KEY_HANDLE_INVALID:    "CKR_UNWRAPPING_KEY_HANDLE_INVALID",
	CKR_UNWRAPPING_KEY_SIZE_RANGE:        "CKR_UNWRAPPING_KEY_SIZE_RANGE",
	CKR_UNWRAPPING_KEY_TYPE_INCONSISTENT: "CKR_UNWRAPPING_KEY_TYPE_INCONSISTENT",
	CKR_USER_ALREADY_LOGGED_IN:           "CKR_USER_ALREADY_LOGGED_IN",
	CKR_USER_NOT_LOGGED_IN:               "CKR_USER_NOT_LOGGED_IN",
	CKR_USER_PIN_NOT_INITIALIZED:         "CKR_USER_PIN_NOT_INITIALIZED",
	CKR_USER_TYPE_INVALID:                "CKR_USER_TYPE_INVALID",
	CKR_USER_ANOTHER_ALREADY_LOGGED_IN:   "CKR_USER_ANOTHER_ALREADY_LOGGED_IN",
	CKR_USER_TOO_MANY_TYPES:              "CKR_USER_TOO_MANY_TYPES",
	CKR_WRAPPED_KEY_INVALID:              "CKR_WRAPPED_KEY_INVALID",
	CKR_WRAPPED_KEY_LEN_RANGE:            "CKR_WRAPPED_KEY_LEN_RANGE",
	CKR_WRAPPING_KEY_HANDLE_INVALID:      "CKR_WRAPPING_KEY_HANDLE_INVALID",
	CKR_WRAPPING_KEY_SIZE_RANGE:          "CKR_WRAPPING_KEY_SIZE_RANGE",
	CKR_WRAPPING_KEY_TYPE_INCONSISTENT:   "CKR_WRAPPING_KEY_TYPE_INCONSISTENT",
	CKR_RANDOM_SEED_NOT_SUPPORTED:        "CKR_RANDOM_SEED_NOT_SUPPORTED",
	CKR_RANDOM_NO_RNG:                    "CKR_RANDOM_NO_RNG",
	CKR_DOMAIN_PARAMS_INVALID:            "CKR_DOMAIN_PARAMS_INVALID",
	CKR_BUFFER_TOO_SMALL:                 "CKR_BUFFER_TOO_SMALL",
	CKR_SAVED_STATE_INVALID:              "CKR_SAVED_STATE_INVALID",
	CKR_INFORMATION_SENSITIVE:            "CKR_INFORMATION_SENSITIVE",
	CKR_STATE_UNSAVEABLE:                 "CKR_STATE_UNSAVEABLE",
	CKR_CRYPTOKI_NOT_INITIALIZED:         "CKR_CRYPTOKI_NOT_INITIALIZED",
	CKR_CRYPTOKI_ALREADY_INITIALIZED:     "CKR_CRYPTOKI_ALREADY_INITIALIZED",
	CKR_MUTEX_BAD:                        "CKR_MUTEX_BAD",
	CKR_MUTEX_NOT_LOCKED:                 "CKR_MUTEX_NOT_LOCKED",
	CKR_NEW_PIN_MODE:                     "CKR_NEW_PIN_MODE",
	CKR_NEXT_OTP:                         "CKR_NEXT_OTP",
	CKR_FUNCTION_REJECTED:                "CKR_FUNCTION_REJECTED",
	CKR_VENDOR_DEFINED:                   "CKR_VENDOR_DEFINED",
}

var mechanismTypeNames = map[MechanismType]string{
	CKM_RSA_PKCS_KEY_PAIR_GEN:          "CKM_RSA_PKCS_KEY_PAIR_GEN",
	CKM_RSA_PKCS:                       "CKM_RSA_PKCS",
	CKM_RSA_9796:                       "CKM_RSA_9796",
	CKM_RSA_X_509:                      "CKM_RSA_X_509",
	CKM_MD2_RSA_PKCS:                   "CKM_MD2_RSA_PKCS",
	CKM_MD5_RSA_PKCS:                   "CKM_MD5_RSA_PKCS",
	CKM_SHA1_RSA_PKCS:                  "CKM_SHA1_RSA_PKCS",
	CKM_RIPEMD128_RSA_PKCS:             "CKM_RIPEMD128_RSA_PKCS",
	CKM_RIPEMD160_RSA_PKCS:             "CKM_RIPEMD160_RSA_PKCS",
	CKM_RSA_PKCS_OAEP:                  "CKM_RSA_PKCS_OAEP",
	CKM_RSA_X9_31_KEY_PAIR_GEN:         "CKM_RSA_X9_31_KEY_PAIR_GEN",
	CKM_RSA_X9_31:                      "CKM_RSA_X9_31",
	CKM_SHA1_RSA_X9_31:                 "CKM_SHA1_RSA_X9_31",
	CKM_RSA_PKCS_PSS:                   "CKM_RSA_PKCS_PSS",
	CKM_SHA1_RSA_PKCS_PSS:              "CKM_SHA1_RSA_PKCS_PSS",
	CKM_DSA_KEY_PAIR_GEN:               "CKM_DSA_KEY_PAIR_GEN",
	CKM_DSA:                            "CKM_DSA",
	CKM_DSA_SHA1:                       "CKM_DSA_SHA1",
	CKM_DH_PKCS_KEY_PAIR_GEN:           "CKM_DH_PKCS_KEY_PAIR_GEN",
	CKM_DH_PKCS_DERIVE:                 "CKM_DH_PKCS_DERIVE",
	CKM_X9_42_DH_KEY_PAIR_GEN:          "CKM_X9_42_DH_KEY_PAIR_GEN",
	CKM_X9_42_DH_DERIVE:                "CKM_X9_42_DH_DERIVE",
	CKM_X9_42_DH_HYBRID_DERIVE:         "CKM_X9_42_DH_HYBRID_DERIVE",
	CKM_X9_42_MQV_DERIVE:               "CKM_X9_42_MQV_DERIVE",
	CKM_SHA256_RSA_PKCS:                "CKM_SHA256_RSA_PKCS",
	CKM_SHA384_RSA_PKCS:                "CKM_SHA384_RSA_PKCS",
	CKM_SHA512_RSA_PKCS:                "CKM_SHA512_RSA_PKCS",
	CKM_SHA256_RSA_PKCS_PSS:            "CKM_SHA256_RSA_PKCS_PSS",
	CKM_SHA384_RSA_PKCS_PSS:            "CKM_SHA384_RSA_PKCS_PSS",
	CKM_SHA512_RSA_PKCS_PSS:            "CKM_SHA512_RSA_PKCS_PSS",
	CKM_SHA224_RSA_PKCS:                "CKM_SHA224_RSA_PKCS",
	CKM_SHA224_RSA_PKCS_PSS:            "CKM_SHA224_RSA_PKCS_PSS",
	CKM_RC2_KEY_GEN:                    "CKM_RC2_KEY_GEN",
	CKM_RC2_ECB:                        "CKM_RC2_ECB",
	CKM_RC2_CBC:                        "CKM_RC2_CBC",
	CKM_RC2_MAC:                        "CKM_RC2_MAC",
	CKM_RC2_MAC_GENERAL:                "CKM_RC2_MAC_GENERAL",
	CKM_RC2_CBC_PAD:                    "CKM_RC2_CBC_PAD",
	CKM_RC4_KEY_GEN:                    "CKM_RC4_KEY_GEN",
	CKM_RC4:                            "CKM_RC4",
	CKM_DES_KEY_GEN:                    "CKM_DES_KEY_GEN",
	CKM_DES_ECB:                        "CKM_DES_ECB",
	CKM_DES_CBC:                        "CKM_DES_CBC",
	CKM_DES_MAC:                        "CKM_DES_MAC",
	CKM_DES_MAC_GENERAL:                "CKM_DES_MAC_GENERAL",
	CKM_DES_CBC_PAD:                    "CKM_DES_CBC_PAD",
	CKM_DES2_KEY_GEN:                   "CKM_DES2_KEY_GEN",
	CKM_DES3_KEY_GEN:                   "CKM_DES3_KEY_GEN",
	CKM_DES3_ECB:                       "CKM_DES3_ECB",
	CKM_DES3_CBC:                       "CKM_DES3_CBC",
	CKM_DES3_MAC:                       "CKM_DES3_MAC",
	CKM_DES3_MAC_GENERAL:               "CKM_DES3_MAC_GENERAL",
	CKM_DES3_CBC_PAD:                   "CKM_DES3_CBC_PAD",
	CKM_CDMF_KEY_GEN:                   "CKM_CDMF_KEY_GEN",
	CKM_CDMF_ECB:                       "CKM_CDMF_ECB",
	CKM_CDMF_CBC:                       "CKM_CDMF_CBC",
	CKM_CDMF_MAC:                       "CKM_CDMF_MAC",
	CKM_CDMF_MAC_GENERAL:               "CKM_CDMF_MAC_GENERAL",
	CKM_CDMF_CBC_PAD:                   "CKM_CDMF_CBC_PAD",
	CKM_DES_OFB64:                      "CKM_DES_OFB64",
	CKM_DES_OFB8:                       "CKM_DES_OFB8",
	CKM_DES_CFB64:                      "CKM_DES_CFB64",
	CKM_DES_CFB8:                       "CKM_DES_CFB8",
	CKM_MD2:                            "CKM_MD2",
	CKM_MD2_HMAC:                       "CKM_MD2_HMAC",
	CKM_MD2_HMAC_GENERAL:               "CKM_MD2_HMAC_GENERAL",
	CKM_MD5:                            "CKM_MD5",
	CKM_MD5_HMAC:                       "CKM_MD5_HMAC",
	CKM_MD5_HMAC_GENERAL:               "CKM_MD5_HMAC_GENERAL",
	CKM_SHA_1:                          "CKM_SHA_1",
	CKM_SHA_1_HMAC:                     "CKM_SHA_1_HMAC",
	CKM_SHA_1_HMAC_GENERAL:             "CKM_SHA_1_HMAC_GENERAL",
	CKM_RIPEMD128:                      "CKM_RIPEMD128",
	CKM_RIPEMD128_HMAC:                 "CKM_RIPEMD128_HMAC",
	CKM_RIPEMD128_HMAC_GENERAL:         "CKM_RIPEMD128_HMAC_GENERAL",
	CKM_RIPEMD160:                      "CKM_RIPEMD160",
	CKM_RIPEMD160_HMAC:                 "CKM_RIPEMD160_HMAC",
	CKM_RIPEMD160_HMAC_GENERAL:         "CKM_RIPEMD160_HMAC_GENERAL",
	CKM_SHA256:                         "CKM_SHA256",
	CKM_SHA256_HMAC:                    "CKM_SHA256_HMAC",
	CKM_SHA256_HMAC_GENERAL:            "CKM_SHA256_HMAC_GENERAL",
	CKM_SHA224:                         "CKM_SHA224",
	CKM_SHA224_HMAC:                    "CKM_SHA224_HMAC",
	CKM_SHA224_HMAC_GENERAL:            "CKM_SHA224_HMAC_GENERAL",
	CKM_SHA384:                         "CKM_SHA384",
	CKM_SHA384_HMAC:                    "CKM_SHA384_HMAC",
	CKM_SHA384_HMAC_GENERAL:            "CKM_SHA384_HMAC_GENERAL",
	CKM_SHA512:                         "CKM_SHA512",
	CKM_SHA512_HMAC:                    "CKM_SHA512_HMAC",
	CKM_SHA512_HMAC_GENERAL:            "CKM_SHA512_HMAC_GENERAL",
	CKM_SECURID_KEY_GEN:                "CKM_SECURID_KEY_GEN",
	CKM_SECURID:                        "CKM_SECURID",
	CKM_HOTP_KEY_GEN:                   "CKM_HOTP_KEY_GEN",
	CKM_HOTP:                           "CKM_HOTP",
	CKM_ACTI:                           "CKM_ACTI",
	CKM_ACTI_KEY_GEN:                   "CKM_ACTI_KEY_GEN",
	CKM_CAST_KEY_GEN:                   "CKM_CAST_KEY_GEN",
	CKM_CAST_ECB:                       "CKM_CAST_ECB",
	CKM_CAST_CBC:                       "CKM_CAST_CBC",
	CKM_CAST_MAC:                       "CKM_CAST_MAC",
	CKM_CAST_MAC_GENERAL:               "CKM_CAST_MAC_GENERAL",
	CKM_CAST_CBC_PAD:                   "CKM_CAST_CBC_PAD",
	CKM_CAST3_KEY_GEN:                  "CKM_CAST3_KEY_GEN",
	CKM_CAST3_ECB:                      "CKM_CAST3_ECB",
	CKM_CAST3_CBC:                      "CKM_CAST3_CBC",
	CKM_CAST3_MAC:                      "CKM_CAST3_MAC",
	CKM_CAST3_MAC_GENERAL:              "CKM_CAST3_MAC_GENERAL",
	CKM_CAST3_CBC_PAD:                  "CKM_CAST3_CBC_PAD",
	CKM_CAST5_KEY_GEN:                  "CKM_CAST5_KEY_GEN",
	CKM_CAST5_ECB:                      "CKM_CAST5_ECB",
	CKM_CAST5_CBC:                      "CKM_CAST5_CBC",
	CKM_CAST5_MAC:                      "CKM_CAST5_MAC",
	CKM_CAST5_MAC_GENERAL:              "CKM_CAST5_MAC_GENERAL",
	CKM_CAST5_CBC_PAD:                  "CKM_CAST5_CBC_PAD",
	CKM_RC5_KEY_GEN:                    "CKM_RC5_KEY_GEN",
	CKM_RC5_ECB:                        "CKM_RC5_ECB",
	CKM_RC5_CBC:                        "CKM_RC5_CBC",
	CKM_RC5_MAC:                        "CKM_RC5_MAC",
	CKM_RC5_MAC_GENERAL:                "CKM_RC5_MAC_GENERAL",
	CKM_RC5_CBC_PAD:                    "CKM_RC5_CBC_PAD",
	CKM_IDEA_KEY_GEN:                   "CKM_IDEA_KEY_GEN",
	CKM_IDEA_ECB:                       "CKM_IDEA_ECB",
	CKM_IDEA_CBC:                       "CKM_IDEA_CBC",
	CKM_IDEA_MAC:                       "CKM_IDEA_MAC",
	CKM_IDEA_MAC_GENERAL:               "CKM_IDEA_MAC_GENERAL",
	CKM_IDEA_CBC_PAD:                   "CKM_IDEA_CBC_PAD",
	CKM_GENERIC_SECRET_KEY_GEN:         "CKM_GENERIC_SECRET_KEY_GEN",
	CKM_CONCATENATE_BASE_AND_KEY:       "CKM_CONCATENATE_BASE_AND_KEY",
	CKM_CONCATENATE_BASE_AND_DATA:      "CKM_CONCATENATE_BASE_AND_DATA",
	CKM_CONCATENATE_DATA_AND_BASE:      "CKM_CONCATENATE_DATA_AND_BASE",
	CKM_XOR_BASE_AND_DATA:              "CKM_XOR_BASE_AND_DATA",
	CKM_EXTRACT_KEY_FROM_KEY:           "CKM_EXTRACT_KEY_FROM_KEY",
	CKM_SSL3_PRE_MASTER_KEY_GEN:        "CKM_SSL3_PRE_MASTER_KEY_GEN",
	CKM_SSL3_MASTER_KEY_DERIVE:         "CKM_SSL3_MASTER_KEY_DERIVE",
	CKM_SSL3_KEY_AND_MAC_DERIVE:        "CKM_SSL3_KEY_AND_MAC_DERIVE",
	CKM_SSL3_MASTER_KEY_DERIVE_DH:      "CKM_SSL3_MASTER_KEY_DERIVE_DH",
	CKM_TLS_PRE_MASTER_KEY_GEN:         "CKM_TLS_PRE_MASTER_KEY_GEN",
	CKM_TLS_MASTER_KEY_DERIVE:          "CKM_TLS_MASTER_KEY_DERIVE",
	CKM_TLS_KEY_AND_MAC_DERIVE:         "CKM_TLS_KEY_AND_MAC_DERIVE",
	CKM_TLS_MASTER_KEY_DERIVE_DH:       "CKM_TLS_MASTER_KEY_DERIVE_DH",
	CKM_TLS_PRF:                        "CKM_TLS_PRF",
	CKM_SSL3_MD5_MAC:                   "CKM_SSL3_MD5_MAC",
	CKM_SSL3_SHA1_MAC:                  "CKM_SSL3_SHA1_MAC",
	CKM_MD5_KEY_DERIVATION:             "CKM_MD5_KEY_DERIVATION",
	CKM_MD2_KEY_DERIVATION:             "CKM_MD2_KEY_DERIVATION",
	CKM_SHA1_KEY_DERIVATION:            "CKM_SHA1_KEY_DERIVATION",
	CKM_SHA256_KEY_DERIVATION:          "CKM_SHA256_KEY_DERIVATION",
	CKM_SHA384_KEY_DERIVATION:          "CKM_SHA384_KEY_DERIVATION",
	CKM_SHA512_KEY_DERIVATION:          "CKM_SHA512_KEY_DERIVATION",
	CKM_SHA224_KEY_DERIVATION:          "CKM_SHA224_KEY_DERIVATION",
	CKM_PBE_MD2_DES_CBC:                "CKM_PBE_MD2_DES_CBC",
	CKM_PBE_MD5_DES_CBC:                "CKM_PBE_MD5_DES_CBC",
	CKM_PBE_MD5_CAST_CBC:               "CKM_PBE_MD5_CAST_CBC",
	CKM_PBE_MD5_CAST3_CBC:              "CKM_PBE_MD5_CAST3_CBC",
	CKM_PBE_MD5_CAST5_CBC:              "CKM_PBE_MD5_CAST5_CBC",
	CKM_PBE_SHA1_CAST5_CBC:             "CKM_PBE_SHA1_CAST5_CBC",
	CKM_PBE_SHA1_RC4_128:               "CKM_PBE_SHA1_RC4_128",
	CKM_PBE_SHA1_RC4_40:                "CKM_PBE_SHA1_RC4_40",
	CKM_PBE_SHA1_DES3_EDE_CBC:          "CKM_PBE_SHA1_DES3_EDE_CBC",
	CKM_PBE_SHA1_DES2_EDE_CBC:          "CKM_PBE_SHA1_DES2_EDE_CBC",
	CKM_PBE_SHA1_RC2_128_CBC:           "CKM_PBE_SHA1_RC2_128_CBC",
	CKM_PBE_SHA1_RC2_40_CBC:            "CKM_PBE_SHA1_RC2_40_CBC",
	CKM_PKCS5_PBKD2:                    "CKM_PKCS5_PBKD2",
	CKM_PBA_SHA1_WITH_SHA1_HMAC:        "CKM_PBA_SHA1_WITH_SHA1_HMAC",
	CKM_WTLS_PRE_MASTER_KEY_GEN:        "CKM_WTLS_PRE_MASTER_KEY_GEN",
	CKM_WTLS_MASTER_KEY_DERIVE:         "CKM_WTLS_MASTER_KEY_DERIVE",
	CKM_WTLS_MASTER_KEY_DERIVE_DH_ECC:  "CKM_WTLS_MASTER_KEY_DERIVE_DH_ECC",
	CKM_WTLS_PRF:                       "CKM_WTLS_PRF",
	CKM_WTLS_SERVER_KEY_AND_MAC_DERIVE: "CKM_WTLS_SERVER_KEY_AND_MAC_DERIVE",
	CKM_WTLS_CLIENT_KEY_AND_MAC_DERIVE: "CKM_WTLS_CLIENT_KEY_AND_MAC_DERIVE",
	CKM_KEY_WRAP_LYNKS:                 "CKM_KEY_WRAP_LYNKS",
	CKM_KEY_WRAP_SET_OAEP:              "CKM_KEY_WRAP_SET_OAEP",
	CKM_CMS_SIG:                        "CKM_CMS_SIG",
	CKM_KIP_DERIVE:                     "CKM_KIP_DERIVE",
	CKM_KIP_WRAP:                       "CKM_KIP_WRAP",
	CKM_KIP_MAC:                        "CKM_KIP_MAC",
	CKM_CAMELLIA_KEY_GEN:               "CKM_CAMELLIA_KEY_GEN",
	CKM_CAMELLIA_ECB:                   "CKM_CAMELLIA_ECB",
	CKM_CAMELLIA_CBC:                   "CKM_CAMELLIA_CBC",
	CKM_CAMELLIA_MAC:                   "CKM_CAMELLIA_MAC",
	CKM_CAMELLIA_MAC_GENERAL:           "CKM_CAMELLIA_MAC_GENERAL",
	CKM_CAMELLIA_CBC_PAD:               "CKM_CAMELLIA_CBC_PAD",
	CKM_CAMELLIA_ECB_ENCRYPT_DATA:      "CKM_CAMELLIA_ECB_ENCRYPT_DATA",
	CKM_CAMELLIA_CBC_ENCRYPT_DATA:      "CKM_CAMELLIA_CBC_ENCRYPT_DATA",
	CKM_CAMELLIA_CTR:                   "CKM_CAMELLIA_CTR",
	CKM_ARIA_KEY_GEN:                   "CKM_ARIA_KEY_GEN",
	CKM_ARIA_ECB:                       "CKM_ARIA_ECB",
	CKM_ARIA_CBC:                       "CKM_ARIA_CBC",
	CKM_ARIA_MAC:                       "CKM_ARIA_MAC",
	CKM_ARIA_MAC_GENERAL:               "CKM_ARIA_MAC_GENERAL",
	CKM_ARIA_CBC_PAD:                   "CKM_ARIA_CBC_PAD",
	CKM_ARIA_ECB_ENCRYPT_DATA:          "CKM_ARIA_ECB_ENCRYPT_DATA",
	CKM_ARIA_CBC_ENCRYPT_DATA:          "CKM_ARIA_CBC_ENCRYPT_DATA",
	CKM_SKIPJACK_KEY_GEN:               "CKM_SKIPJACK_KEY_GEN",
	CKM_SKIPJACK_ECB64:                 "CKM_SKIPJACK_ECB64",
	CKM_SKIPJACK_CBC64:                 "CKM_SKIPJACK_CBC64",
	CKM_SKIPJACK_OFB64:                 "CKM_SKIPJACK_OFB64",
	CKM_SKIPJACK_CFB64:                 "CKM_SKIPJACK_CFB64",
	CKM_SKIPJACK_CFB32:                 "CKM_SKIPJACK_CFB32",
	CKM_SKIPJACK_CFB16:                 "CKM_SKIPJACK_CFB16",
	CKM_SKIPJACK_CFB8:                  "CKM_SKIPJACK_CFB8",
	CKM_SKIPJACK_WRAP:                  "CKM_SKIPJACK_WRAP",
	CKM_SKIPJACK_PRIVATE_WRAP:          "CKM_SKIPJACK_PRIVATE_WRAP",
	CKM_SKIPJACK_RELAYX:                "CKM_SKIPJACK_RELAYX",
	CKM_KEA_KEY_PAIR_GEN:               "CKM_KEA_KEY_PAIR_GEN",
	CKM_KEA_KEY_DERIVE:                 "CKM_KEA_KEY_DERIVE",
	CKM_FORTEZZA_TIMESTAMP:             "CKM_FORTEZZA_TIMESTAMP",
	CKM_BATON_KEY_GEN:                  "CKM_BATON_KEY_GEN",
	CKM_BATON_ECB128:                   "CKM_BATON_ECB128",
	CKM_BATON_ECB96:                    "CKM_BATON_ECB96",
	CKM_BATON_CBC128:                   "CKM_BATON_CBC128",
	CKM_BATON_COUNTER:                  "CKM_BATON_COUNTER",
	CKM_BATON_SHUFFLE:                  "CKM_BATON_SHUFFLE",
	CKM_BATON_WRAP:                     "CKM_BATON_WRAP",
	CKM_ECDSA_KEY_PAIR_GEN:             "CKM_ECDSA_KEY_PAIR_GEN",
	CKM_ECDSA:                          "CKM_ECDSA",
	CKM_ECDSA_SHA1:                     "CKM_ECDSA_SHA1",
	CKM_ECDH1_DERIVE:                   "CKM_ECDH1_DERIVE",
	CKM_ECDH1_COFACTOR_DERIVE:          "CKM_ECDH1_COFACTOR_DERIVE",
	CKM_ECMQV_DERIVE:                   "CKM_ECMQV_DERIVE",
	CKM_JUNIPER_KEY_GEN:                "CKM_JUNIPER_KEY_GEN",
	CKM_JUNIPER_ECB128:                 "CKM_JUNIPER_ECB128",
	CKM_JUNIPER_CBC128:                 "CKM_JUNIPER_CBC128",
	CKM_JUNIPER_COUNTER:                "CKM_JUNIPER_COUNTER",
	CKM_JUNIPER_SHUFFLE:                "CKM_JUNIPER_SHUFFLE",
	CKM_JUNIPER_WRAP:                   "CKM_JUNIPER_WRAP",
	CKM_FASTHASH:                       "CKM_FASTHASH",
	CKM_AES_KEY_GEN:                    "CKM_AES_KEY_GEN",
	CKM_AES_ECB:                        "CKM_AES_ECB",
	CKM_AES_CBC:                        "CKM_AES_CBC",
	CKM_AES_MAC:                        "CKM_AES_MAC",
	CKM_AES_MAC_GENERAL:                "CKM_AES_MAC_GENERAL",
	CKM_AES_CBC_PAD:                    "CKM_AES_CBC_PAD",
	CKM_AES_CTR:                        "CKM_AES_CTR",
	CKM_BLOWFISH_KEY_GEN:               "CKM_BLOWFISH_KEY_GEN",
	CKM_BLOWFISH_CBC:                   "CKM_BLOWFISH_CBC",
	CKM_TWOFISH_KEY_GEN:                "CKM_TWOFISH_KEY_GEN",
	CKM_TWOFISH_CBC:                    "CKM_TWOFISH_CBC",
	CKM_DES_ECB_ENCRYPT_DATA:           "CKM_DES_ECB_ENCRYPT_DATA",
	CKM_DES_CBC_ENCRYPT_DATA:           "CKM_DES_CBC_ENCRYPT_DATA",
	CKM_DES3_ECB_ENCRYPT_DATA:          "CKM_DES3_ECB_ENCRYPT_DATA",
	CKM_DES3_CBC_ENCRYPT_DATA:          "CKM_DES3_CBC_ENCRYPT_DATA",
	CKM_AES_ECB_ENCRYPT_DATA:           "CKM_AES_ECB_ENCRYPT_DATA",
	CKM_AES_CBC_ENCRYPT_DATA:           "CKM_AES_CBC_ENCRYPT_DATA",
	CKM_DSA_PARAMETER_GEN:              "CKM_DSA_PARAMETER_GEN",
	CKM_DH_PKCS_PARAMETER_GEN:          "CKM_DH_PKCS_PARAMETER_GEN",
	CKM_X9_42_DH_PARAMETER_GEN:         "CKM_X9_42_DH_PARAMETER_GEN",
	CKM_VENDOR_DEFINED:                 "CKM_VENDOR_DEFINED",
}

var attributeTypeNames = map[AttributeType]string{
	CKA_CLASS:                      "CKA_CLASS",
	CKA_TOKEN:                      "CKA_TOKEN",
	CKA_PRIVATE:                    "CKA_PRIVATE",
	CKA_LABEL:                      "CKA_LABEL",
	CKA_APPLICATION:                "CKA_APPLICATION",
	CKA_VALUE:                      "CKA_VALUE",
	CKA_OBJECT_ID:                  "CKA_OBJECT_ID",
	CKA_CERTIFICATE_TYPE:           "CKA_CERTIFICATE_TYPE",
	CKA_ISSUER:                     "CKA_ISSUER",
	CKA_SERIAL_NUMBER:              "CKA_SERIAL_NUMBER",
	CKA_AC_ISSUER:                  "CKA_AC_ISSUER",
	CKA_OWNER:                      "CKA_OWNER",
	CKA_ATTR_TYPES:                 "CKA_ATTR_TYPES",
	CKA_TRUSTED:                    "CKA_TRUSTED",
	CKA_CERTIFICATE_CATEGORY:       "CKA_CERTIFICATE_CATEGORY",
	CKA_JAVA_MIDP_SECURITY_DOMAIN:  "CKA_JAVA_MIDP_SECURITY_DOMAIN",
	CKA_URL:                        "CKA_URL",
	CKA_HASH_OF_SUBJECT_PUBLIC_KEY: "CKA_HASH_OF_SUBJECT_PUBLIC_KEY",
	CKA_HASH_OF_ISSUER_PUBLIC_KEY:  "CKA_HASH_OF_ISSUER_PUBLIC_KEY",
	CKA_CHECK_VALUE:                "CKA_CHECK_VALUE",
	CKA_KEY_TYPE:                   "CKA_KEY_TYPE",
	CKA_SUBJECT:                    "CKA_SUBJECT",
	CKA_ID:                         "CKA_ID",
	CKA_SENSITIVE:                  "CKA_SENSITIVE",
	CKA_ENCRYPT:                    "CKA_ENCRYPT",
	CKA_DECRYPT:                    "CKA_DECRYPT",
	CKA_WRAP:                       "CKA_WRAP",
	CKA_UNWRAP:                     "CKA_UNWRAP",
	CKA_SIGN:                       "CKA_SIGN",
	CKA_SIGN_RECOVER:               "CKA_SIGN_RECOVER",
	CKA_VERIFY:                     "CKA_VERIFY",
	CKA_VERIFY_RECOVER:             "CKA_VERIFY_RECOVER",
	CKA_DERIVE:                     "CKA_DERIVE",
	CKA_START_DATE:                 "CKA_START_DATE",
	CKA_END_DATE:                   "CKA_END_DATE",
	CKA_MODULUS:                    "CKA_MODULUS",
	CKA_MODULUS_BITS:               "CKA_MODULUS_BITS",
	CKA_PUBLIC_EXPONENT:            "CKA_PUBLIC_EXPONENT",
	CKA_PRIVATE_EXPONENT:           "CKA_PRIVATE_EXPONENT",
	CKA_PRIME_1:                    "CKA_PRIME_1",
	CKA_PRIME_2:                    "CKA_PRIME_2",
	CKA_EXPONENT_1:                 "CKA_EXPONENT_1",
	CKA_EXPONENT_2:                 "CKA_EXPONENT_2",
	CKA_COEFFICIENT:                "CKA_COEFFICIENT",
	CKA_PRIME:                      "CKA_PRIME",
	CKA_SUBPRIME:                   "CKA_SUBPRIME",
	CKA_BASE:                       "CKA_BASE",
	CKA_PRIME_BITS:                 "CKA_PRIME_BITS",
	CKA_SUBPRIME_BITS:              "CKA_SUBPRIME_BITS",
	CKA_VALUE_BITS:                 "CKA_VALUE_BITS",
	CKA_VALUE_LEN:                  "CKA_VALUE_LEN",
	CKA_EXTRACTABLE:                "CKA_EXTRACTABLE",
	CKA_LOCAL:                      "CKA_LOCAL",
	CKA_NEVER_EXTRACTABLE:          "CKA_NEVER_EXTRACTABLE",
	CKA_ALWAYS_SENSITIVE:           "CKA_ALWAYS_SENSITIVE",
	CKA_KEY_GEN_MECHANISM:          "CKA_KEY_GEN_MECHANISM",
	CKA_MODIFIABLE:                 "CKA_MODIFIABLE",
	CKA_EC_PARAMS:                  "CKA_EC_PARAMS",
	CKA_EC_POINT:                   "CKA_EC_POINT",
	CKA_SECONDARY_AUTH:             "CKA_SECONDARY_AUTH",
	CKA_AUTH_PIN_FLAGS:             "CKA_AUTH_PIN_FLAGS",
	CKA_ALWAYS_AUTHENTICATE:        "CKA_ALWAYS_AUTHENTICATE",
	CKA_WRAP_WITH_TRUSTED:          "CKA_WRAP_WITH_TRUSTED",
	CKA_WRAP_TEMPLATE:              "CKA_WRAP_TEMPLATE",
	CKA_UNWRAP_TEMPLATE:            "CKA_UNWRAP_TEMPLATE",
	CKA_OTP_FORMAT:                 "CKA_OTP_FORMAT",
	CKA_OTP_LENGTH:                 "CKA_OTP_LENGTH",
	CKA_OTP_TIME_INTERVAL:          "CKA_OTP_TIME_INTERVAL",
	CKA_OTP_USER_FRIENDLY_MODE:     "CKA_OTP_USER_FRIENDLY_MODE",
	CKA_OTP_CHALLENGE_REQUIREMENT:  "CKA_OTP_CHALLENGE_REQUIREMENT",
	CKA_OTP_TIME_REQUIREMENT:       "CKA_OTP_TIME_REQUIREMENT",
	CKA_OTP_COUNTER_REQUIREMENT:    "CKA_OTP_COUNTER_REQUIREMENT",
	CKA_OTP_PIN_REQUIREMENT:        "CKA_OTP_PIN_REQUIREMENT",
	CKA_OTP_COUNTER:                "CKA_OTP_COUNTER",
	CKA_OTP_TIME:                   "CKA_OTP_TIME",
	CKA_OTP_USER_IDENTIFIER:        "CKA_OTP_USER_IDENTIFIER",
	CKA_OTP_SERVICE_IDENTIFIER:     "CKA_OTP_SERVICE_IDENTIFIER",
	CKA_OTP_SERVICE_LOGO:           "CKA_OTP_SERVICE_LOGO",
	CKA_OTP_SERVICE_LOGO_TYPE:      "CKA_OTP_SERVICE_LOGO_TYPE",
	CKA_HW_FEATURE_TYPE:            "CKA_HW_FEATURE_TYPE",
	CKA_RESET_ON_INIT:              "CKA_RESET_ON_INIT",
	CKA_HAS_RESET:                  "CKA_HAS_RESET",
	CKA_PIXEL_X:                    "CKA_PIXEL_X",
	CKA_PIXEL_Y:                    "CKA_PIXEL_Y",
	CKA_RESOLUTION:                 "CKA_RESOLUTION",
	CKA_CHAR_ROWS:                  "CKA_CHAR_ROWS",
	CKA_CHAR_COLUMNS:               "CKA_CHAR_COLUMNS",
	CKA_COLOR:                      "CKA_COLOR",
	CKA_BITS_PER_PIXEL:             "CKA_BITS_PER_PIXEL",
	CKA_CHAR_SETS:                  "CKA_CHAR_SETS",
	CKA_ENCODING_METHODS:           "CKA_ENCODING_METHODS",
	CKA_MIME_TYPES:                 "CKA_MIME_TYPES",
	CKA_MECHANISM_TYPE:             "CKA_MECHANISM_TYPE",
	CKA_REQUIRED_CMS_ATTRIBUTES:    "CKA_REQUIRED_CMS_ATTRIBUTES",
	CKA_DEFAULT_CMS_ATTRIBUTES:     "CKA_DEFAULT_CMS_ATTRIBUTES",
	CKA_SUPPORTED_CMS_ATTRIBUTES:   "CKA_SUPPORTED_CMS_ATTRIBUTES",
	CKA_ALLOWED_MECHANISMS:         "CKA_ALLOWED_MECHANISMS",
	CKA_VENDOR_DEFINED:             "CKA_VENDOR_DEFINED",
}

var userTypeNames = map[UserType]string{
	CKU_SO:               "CKU_SO",
	CKU_USER:             "CKU_USER",
	CKU_CONTEXT_SPECIFIC: "CKU_CONTEXT_SPECIFIC",
}

var stateNames = map[State]string{
	CKS_RO_PUBLIC_SESSION: "CKS_RO_PUBLIC_SESSION",
	CKS_RO_USER_FUNCTIONS: "CKS_RO_USER_FUNCTIONS",
	CKS_RW_PUBLIC_SESSION: "CKS_RW_PUBLIC_SESSION",
	CKS_RW_USER_FUNCTIONS: "CKS_RW_USER_FUNCTIONS",
	CKS_RW_SO_FUNCTIONS:   "CKS_RW_SO_FUNCTIONS",
}

var objectClassNames = map[ObjectClass]string{
	CKO_DATA:              "CKO_DATA",
	CKO_CERTIFICATE:       "CKO_CERTIFICATE",
	CKO_PUBLIC_KEY:        "CKO_PUBLIC_KEY",
	CKO_PRIVATE_KEY:       "CKO_PRIVATE_KEY",
	CKO_SECRET_KEY:        "CKO_SECRET_KEY",
	CKO_HW_FEATURE:        "CKO_HW_FEATURE",
	CKO_DOMAIN_PARAMETERS: "CKO_DOMAIN_PARAMETERS",
	CKO_MECHANISM:         "CKO_MECHANISM",
	CKO_OTP_KEY:           "CKO_OTP_KEY",
	CKO_VENDOR_DEFINED:    "CKO_VENDOR_DEFINED",
}

var keyTypeNames = map[KeyType]string{
	CKK_RSA:            "CKK_RSA",
	CKK_DSA:            "CKK_DSA",
	CKK_DH:             "CKK_DH",
	CKK_EC:             "CKK_EC",
	CKK_X9_42_DH:       "CKK_X9_42_DH",
	CKK_KEA:            "CKK_KEA",
	CKK_GENERIC_SECRET: "CKK_GENERIC_SECRET",
	CKK_RC2:            "CKK_RC2",
	CKK_RC4:            "CKK_RC4",
	CKK_DES:            "CKK_DES",
	CKK_DES2:           "CKK_DES2",
	CKK_DES3:           "CKK_DES3",
	CKK_CAST:           "CKK_CAST",
	CKK_CAST3:          "CKK_CAST3",
	CKK_CAST128:        "CKK_CAST128",
	CKK_RC5:            "CKK_RC5",
	CKK_IDEA:           "CKK_IDEA",
	CKK_SKIPJACK:       "CKK_SKIPJACK",
	CKK_BATON:          "CKK_BATON",
	CKK_JUNIPER:        "CKK_JUNIPER",
	CKK_CDMF:           "CKK_CDMF",
	CKK_AES:            "CKK_AES",
	CKK_BLOWFISH:       "CKK_BLOWFISH",
	CKK_TWOFISH:        "CKK_TWOFISH",
	CKK_SECURID:        "CKK_SECURID",
	CKK_HOTP:           "CKK_HOTP",
	CKK_ACTI:           "CKK_ACTI",
	CKK_CAMELLIA:       "CKK_CAMELLIA",
	CKK_ARIA:           "CKK_ARIA",
	CKK_VENDOR_DEFINED: "CKK_VENDOR_DEFINED",
}
