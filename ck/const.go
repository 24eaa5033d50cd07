package ck

// Status codes.
const (
	CKR_OK                               RV = 0x00000000
	CKR_CANCEL                           RV = 0x00000001
	CKR_HOST_MEMORY                      RV = 0x00000002
	CKR_SLOT_ID_INVALID                  RV = 0x00000003
	CKR_GENERAL_ERROR                    RV = 0x00000005
	CKR_FUNCTION_FAILED                  RV = 0x00000006
	CKR_ARGUMENTS_BAD                    RV = 0x00000007
	CKR_NO_EVENT                         RV = 0x00000008
	CKR_NEED_TO_CREATE_THREADS           RV = 0x00000009
	CKR_CANT_LOCK                        RV = 0x0000000A
	CKR_ATTRIBUTE_READ_ONLY              RV = 0x00000010
	CKR_ATTRIBUTE_SENSITIVE              RV = 0x00000011
	CKR_ATTRIBUTE_TYPE_INVALID           RV = 0x00000012
	CKR_ATTRIBUTE_VALUE_INVALID          RV = 0x00000013
	CKR_DATA_INVALID                     RV = 0x00000020
	CKR_DATA_LEN_RANGE                   RV = 0x00000021
	CKR_DEVICE_ERROR                     RV = 0x00000030
	CKR_DEVICE_MEMORY                    RV = 0x00000031
	CKR_DEVICE_REMOVED                   RV = 0x00000032
	CKR_ENCRYPTED_DATA_INVALID           RV = 0x00000040
	CKR_ENCRYPTED_DATA_LEN_RANGE         RV = 0x00000041
	CKR_FUNCTION_CANCELED                RV = 0x00000050
	CKR_FUNCTION_NOT_PARALLEL            RV = 0x00000051
	CKR_FUNCTION_NOT_SUPPORTED           RV = 0x00000054
	CKR_KEY_HANDLE_INVALID               RV = 0x00000060
	CKR_KEY_SIZE_RANGE                   RV = 0x00000062
	CKR_KEY_TYPE_INCONSISTENT            RV = 0x00000063
	CKR_KEY_NOT_NEEDED                   RV = 0x00000064
	CKR_KEY_CHANGED                      RV = 0x00000065
	CKR_KEY_NEEDED                       RV = 0x00000066
	CKR_KEY_INDIGESTIBLE                 RV = 0x00000067
	CKR_KEY_FUNCTION_NOT_PERMITTED       RV = 0x00000068
	CKR_KEY_NOT_WRAPPABLE                RV = 0x00000069
	CKR_KEY_UNEXTRACTABLE                RV = 0x0000006A
	CKR_MECHANISM_INVALID                RV = 0x00000070
	CKR_MECHANISM_PARAM_INVALID          RV = 0x00000071
	CKR_OBJECT_HANDLE_INVALID            RV = 0x00000082
	CKR_OPERATION_ACTIVE                 RV = 0x00000090
	CKR_OPERATION_NOT_INITIALIZED        RV = 0x00000091
	CKR_PIN_INCORRECT                    RV = 0x000000A0
	CKR_PIN_INVALID                      RV = 0x000000A1
	CKR_PIN_LEN_RANGE                    RV = 0x000000A2
	CKR_PIN_EXPIRED                      RV = 0x000000A3
	CKR_PIN_LOCKED                       RV = 0x000000A4
	CKR_SESSION_CLOSED                   RV = 0x000000B0
	CKR_SESSION_COUNT                    RV = 0x000000B1
	CKR_SESSION_HANDLE_INVALID           RV = 0x000000B3
	CKR_SESSION_PARALLEL_NOT_SUPPORTED   RV = 0x000000B4
	CKR_SESSION_READ_ONLY                RV = 0x000000B5
	CKR_SESSION_EXISTS                   RV = 0x000000B6
	CKR_SESSION_READ_ONLY_EXISTS         RV = 0x000000B7
	CKR_SESSION_READ_WRITE_SO_EXISTS     RV = 0x000000B8
	CKR_SIGNATURE_INVALID                RV = 0x000000C0
	CKR_SIGNATURE_LEN_RANGE              RV = 0x000000C1
	CKR_TEMPLATE_INCOMPLETE              RV = 0x000000D0
	CKR_TEMPLATE_INCONSISTENT            RV = 0x000000D1
	CKR_TOKEN_NOT_PRESENT                RV = 0x000000E0
	CKR_TOKEN_NOT_RECOGNIZED             RV = 0x000000E1
	CKR_TOKEN_WRITE_PROTECTED            RV = 0x000000E2
	CKR_UNWRAPPING_KEY_HANDLE_INVALID    RV = 0x000000F0
	CKR_UNWRAPPING_KEY_SIZE_RANGE        RV = 0x000000F1
	CKR_UNWRAPPING_KEY_TYPE_INCONSISTENT RV = 0x000000F2
	CKR_USER_ALREADY_LOGGED_IN           RV = 0x00000100
	CKR_USER_NOT_LOGGED_IN               RV = 0x00000101
	CKR_USER_PIN_NOT_INITIALIZED         RV = 0x00000102
	CKR_USER_TYPE_INVALID                RV = 0x00000103
	CKR_USER_ANOTHER_ALREADY_LOGGED_IN   RV = 0x00000104
	CKR_USER_TOO_MANY_TYPES              RV = 0x00000105
	CKR_WRAPPED_KEY_INVALID              RV = 0x00000110
	CKR_WRAPPED_KEY_LEN_RANGE            RV = 0x00000112
	CKR_WRAPPING_KEY_HANDLE_INVALID      RV = 0x00000113
	CKR_WRAPPING_KEY_SIZE_RANGE          RV = 0x00000114
	CKR_WRAPPING_KEY_TYPE_INCONSISTENT   RV = 0x00000115
	CKR_RANDOM_SEED_NOT_SUPPORTED        RV = 0x00000120
	CKR_RANDOM_NO_RNG                    RV = 0x00000121
	CKR_DOMAIN_PARAMS_INVALID            RV = 0x00000130
	CKR_BUFFER_TOO_SMALL                 RV = 0x00000150
	CKR_SAVED_STATE_INVALID              RV = 0x00000160
	CKR_INFORMATION_SENSITIVE            RV = 0x00000170
	CKR_STATE_UNSAVEABLE                 RV = 0x00000180
	CKR_CRYPTOKI_NOT_INITIALIZED         RV = 0x00000190
	CKR_CRYPTOKI_ALREADY_INITIALIZED     RV = 0x00000191
	CKR_MUTEX_BAD                        RV = 0x000001A0
	CKR_MUTEX_NOT_LOCKED                 RV = 0x000001A1
	CKR_NEW_PIN_MODE                     RV = 0x000001B0
	CKR_NEXT_OTP                         RV = 0x000001B1
	CKR_FUNCTION_REJECTED                RV = 0x00000200
	CKR_VENDOR_DEFINED                   RV = 0x80000000
)

// Mechanism types.
const (
	CKM_RSA_PKCS_KEY_PAIR_GEN          MechanismType = 0x00000000
	CKM_RSA_PKCS                       MechanismType = 0x00000001
	CKM_RSA_9796                       MechanismType = 0x00000002
	CKM_RSA_X_509                      MechanismType = 0x00000003
	CKM_MD2_RSA_PKCS                   MechanismType = 0x00000004
	CKM_MD5_RSA_PKCS                   MechanismType = 0x00000005
	CKM_SHA1_RSA_PKCS                  MechanismType = 0x00000006
	CKM_RIPEMD128_RSA_PKCS             MechanismType = 0x00000007
	CKM_RIPEMD160_RSA_PKCS             MechanismType = 0x00000008
	CKM_RSA_PKCS_OAEP                  MechanismType = 0x00000009
	CKM_RSA_X9_31_KEY_PAIR_GEN         MechanismType = 0x0000000A
	CKM_RSA_X9_31                      MechanismType = 0x0000000B
	CKM_SHA1_RSA_X9_31                 MechanismType = 0x0000000C
	CKM_RSA_PKCS_PSS                   MechanismType = 0x0000000D
	CKM_SHA1_RSA_PKCS_PSS              MechanismType = 0x0000000E
	CKM_DSA_KEY_PAIR_GEN               MechanismType = 0x00000010
	CKM_DSA                            MechanismType = 0x00000011
	CKM_DSA_SHA1                       MechanismType = 0x00000012
	CKM_DH_PKCS_KEY_PAIR_GEN           MechanismType = 0x00000020
	CKM_DH_PKCS_DERIVE                 MechanismType = 0x00000021
	CKM_X9_42_DH_KEY_PAIR_GEN          MechanismType = 0x00000030
	CKM_X9_42_DH_DERIVE                MechanismType = 0x00000031
	CKM_X9_42_DH_HYBRID_DERIVE         MechanismType = 0x00000032
	CKM_X9_42_MQV_DERIVE               MechanismType = 0x00000033
	CKM_SHA256_RSA_PKCS                MechanismType = 0x00000040
	CKM_SHA384_RSA_PKCS                MechanismType = 0x00000041
	CKM_SHA512_RSA_PKCS                MechanismType = 0x00000042
	CKM_SHA256_RSA_PKCS_PSS            MechanismType = 0x00000043
	CKM_SHA384_RSA_PKCS_PSS            MechanismType = 0x00000044
	CKM_SHA512_RSA_PKCS_PSS            MechanismType = 0x00000045
	CKM_SHA224_RSA_PKCS                MechanismType = 0x00000046
	CKM_SHA224_RSA_PKCS_PSS            MechanismType = 0x00000047
	CKM_RC2_KEY_GEN                    MechanismType = 0x00000100
	CKM_RC2_ECB                        MechanismType = 0x00000101
	CKM_RC2_CBC                        MechanismType = 0x00000102
	CKM_RC2_MAC                        MechanismType = 0x00000103
	CKM_RC2_MAC_GENERAL                MechanismType = 0x00000104
	CKM_RC2_CBC_PAD                    MechanismType = 0x00000105
	CKM_RC4_KEY_GEN                    MechanismType = 0x00000110
	CKM_RC4                            MechanismType = 0x00000111
	CKM_DES_KEY_GEN                    MechanismType = 0x00000120
	CKM_DES_ECB                        MechanismType = 0x00000121
	CKM_DES_CBC                        MechanismType = 0x00000122
	CKM_DES_MAC                        MechanismType = 0x00000123
	CKM_DES_MAC_GENERAL                MechanismType = 0x00000124
	CKM_DES_CBC_PAD                    MechanismType = 0x00000125
	CKM_DES2_KEY_GEN                   MechanismType = 0x00000130
	CKM_DES3_KEY_GEN                   MechanismType = 0x00000131
	CKM_DES3_ECB                       MechanismType = 0x00000132
	CKM_DES3_CBC                       MechanismType = 0x00000133
	CKM_DES3_MAC                       MechanismType = 0x00000134
	CKM_DES3_MAC_GENERAL               MechanismType = 0x00000135
	CKM_DES3_CBC_PAD                   MechanismType = 0x00000136
	CKM_CDMF_KEY_GEN                   MechanismType = 0x00000140
	CKM_CDMF_ECB                       MechanismType = 0x00000141
	CKM_CDMF_CBC                       MechanismType = 0x00000142
	CKM_CDMF_MAC                       MechanismType = 0x00000143
	CKM_CDMF_MAC_GENERAL               MechanismType = 0x00000144
	CKM_CDMF_CBC_PAD                   MechanismType = 0x00000145
	CKM_DES_OFB64                      MechanismType = 0x00000150
	CKM_DES_OFB8                       MechanismType = 0x00000151
	CKM_DES_CFB64                      MechanismType = 0x00000152
	CKM_DES_CFB8                       MechanismType = 0x00000153
	CKM_MD2                            MechanismType = 0x00000200
	CKM_MD2_HMAC                       MechanismType = 0x00000201
	CKM_MD2_HMAC_GENERAL               MechanismType = 0x00000202
	CKM_MD5                            MechanismType = 0x00000210
	CKM_MD5_HMAC                       MechanismType = 0x00000211
	CKM_MD5_HMAC_GENERAL               MechanismType = 0x00000212
	CKM_SHA_1                          MechanismType = 0x00000220
	CKM_SHA_1_HMAC                     MechanismType = 0x00000221
	CKM_SHA_1_HMAC_GENERAL             MechanismType = 0x00000222
	CKM_RIPEMD128                      MechanismType = 0x00000230
	CKM_RIPEMD128_HMAC                 MechanismType = 0x00000231
	CKM_RIPEMD128_HMAC_GENERAL         MechanismType = 0x00000232
	CKM_RIPEMD160                      MechanismType = 0x00000240
	CKM_RIPEMD160_HMAC                 MechanismType = 0x00000241
	CKM_RIPEMD160_HMAC_GENERAL         MechanismType = 0x00000242
	CKM_SHA256                         MechanismType = 0x00000250
	CKM_SHA256_HMAC                    MechanismType = 0x00000251
	CKM_SHA256_HMAC_GENERAL            MechanismType = 0x00000252
	CKM_SHA224                         MechanismType = 0x00000255
	CKM_SHA224_HMAC                    MechanismType = 0x00000256
	CKM_SHA224_HMAC_GENERAL            MechanismType = 0x00000257
	CKM_SHA384                         MechanismType = 0x00000260
	CKM_SHA384_HMAC                    MechanismType = 0x00000261
	CKM_SHA384_HMAC_GENERAL            MechanismType = 0x00000262
	CKM_SHA512                         MechanismType = 0x00000270
	CKM_SHA512_HMAC                    MechanismType = 0x00000271
	CKM_SHA512_HMAC_GENERAL            MechanismType = 0x00000272
	CKM_SECURID_KEY_GEN                MechanismType = 0x00000280
	CKM_SECURID                        MechanismType = 0x00000282
	CKM_HOTP_KEY_GEN                   MechanismType = 0x00000290
	CKM_HOTP                           MechanismType = 0x00000291
	CKM_ACTI                           MechanismType = 0x000002A0
	CKM_ACTI_KEY_GEN                   MechanismType = 0x000002A1
	CKM_CAST_KEY_GEN                   MechanismType = 0x00000300
	CKM_CAST_ECB                       MechanismType = 0x00000301
	CKM_CAST_CBC                       MechanismType = 0x00000302
	CKM_CAST_MAC                       MechanismType = 0x00000303
	CKM_CAST_MAC_GENERAL               MechanismType = 0x00000304
	CKM_CAST_CBC_PAD                   MechanismType = 0x00000305
	CKM_CAST3_KEY_GEN                  MechanismType = 0x00000310
	CKM_CAST3_ECB                      MechanismType = 0x00000311
	CKM_CAST3_CBC                      MechanismType = 0x00000312
	CKM_CAST3_MAC                      MechanismType = 0x00000313
	CKM_CAST3_MAC_GENERAL              MechanismType = 0x00000314
	CKM_CAST3_CBC_PAD                  MechanismType = 0x00000315
	CKM_CAST5_KEY_GEN                  MechanismType = 0x00000320
	CKM_CAST5_ECB                      MechanismType = 0x00000321
	CKM_CAST5_CBC                      MechanismType = 0x00000322
	CKM_CAST5_MAC                      MechanismType = 0x00000323
	CKM_CAST5_MAC_GENERAL              MechanismType = 0x00000324
	CKM_CAST5_CBC_PAD                  MechanismType = 0x00000325
	CKM_RC5_KEY_GEN                    MechanismType = 0x00000330
	CKM_RC5_ECB                        MechanismType = 0x00000331
	CKM_RC5_CBC                        MechanismType = 0x00000332
	CKM_RC5_MAC                        MechanismType = 0x00000333
	CKM_RC5_MAC_GENERAL                MechanismType = 0x00000334
	CKM_RC5_CBC_PAD                    MechanismType = 0x00000335
	CKM_IDEA_KEY_GEN                   MechanismType = 0x00000340
	CKM_IDEA_ECB                       MechanismType = 0x00000341
	CKM_IDEA_CBC                       MechanismType = 0x00000342
	CKM_IDEA_MAC                       MechanismType = 0x00000343
	CKM_IDEA_MAC_GENERAL               MechanismType = 0x00000344
	CKM_IDEA_CBC_PAD                   MechanismType = 0x00000345
	CKM_GENERIC_SECRET_KEY_GEN         MechanismType = 0x00000350
	CKM_CONCATENATE_BASE_AND_KEY       MechanismType = 0x00000360
	CKM_CONCATENATE_BASE_AND_DATA      MechanismType = 0x00000362
	CKM_CONCATENATE_DATA_AND_BASE      MechanismType = 0x00000363
	CKM_XOR_BASE_AND_DATA              MechanismType = 0x00000364
	CKM_EXTRACT_KEY_FROM_KEY           MechanismType = 0x00000365
	CKM_SSL3_PRE_MASTER_KEY_GEN        MechanismType = 0x00000370
	CKM_SSL3_MASTER_KEY_DERIVE         MechanismType = 0x00000371
	CKM_SSL3_KEY_AND_MAC_DERIVE        MechanismType = 0x00000372
	CKM_SSL3_MASTER_KEY_DERIVE_DH      MechanismType = 0x00000373
	CKM_TLS_PRE_MASTER_KEY_GEN         MechanismType = 0x00000374
	CKM_TLS_MASTER_KEY_DERIVE          MechanismType = 0x00000375
	CKM_TLS_KEY_AND_MAC_DERIVE         MechanismType = 0x00000376
	CKM_TLS_MASTER_KEY_DERIVE_DH       MechanismType = 0x00000377
	CKM_TLS_PRF                        MechanismType = 0x00000378
	CKM_SSL3_MD5_MAC                   MechanismType = 0x00000380
	CKM_SSL3_SHA1_MAC                  MechanismType = 0x00000381
	CKM_MD5_KEY_DERIVATION             MechanismType = 0x00000390
	CKM_MD2_KEY_DERIVATION             MechanismType = 0x00000391
	CKM_SHA1_KEY_DERIVATION            MechanismType = 0x00000392
	CKM_SHA256_KEY_DERIVATION          MechanismType = 0x00000393
	CKM_SHA384_KEY_DERIVATION          MechanismType = 0x00000394
	CKM_SHA512_KEY_DERIVATION          MechanismType = 0x00000395
	CKM_SHA224_KEY_DERIVATION          MechanismType = 0x00000396
	CKM_PBE_MD2_DES_CBC                MechanismType = 0x000003A0
	CKM_PBE_MD5_DES_CBC                MechanismType = 0x000003A1
	CKM_PBE_MD5_CAST_CBC               MechanismType = 0x000003A2
	CKM_PBE_MD5_CAST3_CBC              MechanismType = 0x000003A3
	CKM_PBE_MD5_CAST5_CBC              MechanismType = 0x000003A4
	CKM_PBE_SHA1_CAST5_CBC             MechanismType = 0x000003A5
	CKM_PBE_SHA1_RC4_128               MechanismType = 0x000003A6
	CKM_PBE_SHA1_RC4_40                MechanismType = 0x000003A7
	CKM_PBE_SHA1_DES3_EDE_CBC          MechanismType = 0x000003A8
	CKM_PBE_SHA1_DES2_EDE_CBC          MechanismType = 0x000003A9
	CKM_PBE_SHA1_RC2_128_CBC           MechanismType = 0x000003AA
	CKM_PBE_SHA1_RC2_40_CBC            MechanismType = 0x000003AB
	CKM_PKCS5_PBKD2                    MechanismType = 0x000003B0
	CKM_PBA_SHA1_WITH_SHA1_HMAC        MechanismType = 0x000003C0
	CKM_WTLS_PRE_MASTER_KEY_GEN        MechanismType = 0x000003D0
	CKM_WTLS_MASTER_KEY_DERIVE         MechanismType = 0x000003D1
	CKM_WTLS_MASTER_KEY_DERIVE_DH_ECC  MechanismType = 0x000003D2
	CKM_WTLS_PRF                       MechanismType = 0x000003D3
	CKM_WTLS_SERVER_KEY_AND_MAC_DERIVE MechanismType = 0x000003D4
	CKM_WTLS_CLIENT_KEY_AND_MAC_DERIVE MechanismType = 0x000003D5
	CKM_KEY_WRAP_LYNKS                 MechanismType = 0x00000400
	CKM_KEY_WRAP_SET_OAEP              MechanismType = 0x00000401
	CKM_CMS_SIG                        MechanismType = 0x00000500
	CKM_KIP_DERIVE                     MechanismType = 0x00000510
	CKM_KIP_WRAP                       MechanismType = 0x00000511
	CKM_KIP_MAC                        MechanismType = 0x00000512
	CKM_CAMELLIA_KEY_GEN               MechanismType = 0x00000550
	CKM_CAMELLIA_ECB                   MechanismType = 0x00000551
	CKM_CAMELLIA_CBC                   MechanismType = 0x00000552
	CKM_CAMELLIA_MAC                   MechanismType = 0x00000553
	CKM_CAMELLIA_MAC_GENERAL           MechanismType = 0x00000554
	CKM_CAMELLIA_CBC_PAD               MechanismType = 0x00000555
	CKM_CAMELLIA_ECB_ENCRYPT_DATA      MechanismType = 0x00000556
	CKM_CAMELLIA_CBC_ENCRYPT_DATA      MechanismType = 0x00000557
	CKM_CAMELLIA_CTR                   MechanismType = 0x00000558
	CKM_ARIA_KEY_GEN                   MechanismType = 0x00000560
	CKM_ARIA_ECB                       MechanismType = 0x00000561
	CKM_ARIA_CBC                       MechanismType = 0x00000562
	CKM_ARIA_MAC                       MechanismType = 0x00000563
	CKM_ARIA_MAC_GENERAL               MechanismType = 0x00000564
	CKM_ARIA_CBC_PAD                   MechanismType = 0x00000565
	CKM_ARIA_ECB_ENCRYPT_DATA          MechanismType = 0x00000566
	CKM_ARIA_CBC_ENCRYPT_DATA          MechanismType = 0x00000567
	CKM_SKIPJACK_KEY_GEN               MechanismType = 0x00001000
	CKM_SKIPJACK_ECB64                 MechanismType = 0x00001001
	CKM_SKIPJACK_CBC64                 MechanismType = 0x00001002
	CKM_SKIPJACK_OFB64                 MechanismType = 0x00001003
	CKM_SKIPJACK_CFB64                 MechanismType = 0x00001004
	CKM_SKIPJACK_CFB32                 MechanismType = 0x00001005
	CKM_SKIPJACK_CFB16                 MechanismType = 0x00001006
	CKM_SKIPJACK_CFB8                  MechanismType = 0x00001007
	CKM_SKIPJACK_WRAP                  MechanismType = 0x00001008
	CKM_SKIPJACK_PRIVATE_WRAP          MechanismType = 0x00001009
	CKM_SKIPJACK_RELAYX                MechanismType = 0x0000100A
	CKM_KEA_KEY_PAIR_GEN               MechanismType = 0x00001010
	CKM_KEA_KEY_DERIVE                 MechanismType = 0x00001011
	CKM_FORTEZZA_TIMESTAMP             MechanismType = 0x00001020
	CKM_BATON_KEY_GEN                  MechanismType = 0x00001030
	CKM_BATON_ECB128                   MechanismType = 0x00001031
	CKM_BATON_ECB96                    MechanismType = 0x00001032
	CKM_BATON_CBC128                   MechanismType = 0x00001033
	CKM_BATON_COUNTER                  MechanismType = 0x00001034
	CKM_BATON_SHUFFLE                  MechanismType = 0x00001035
	CKM_BATON_WRAP                     MechanismType = 0x00001036
	CKM_ECDSA_KEY_PAIR_GEN             MechanismType = 0x00001040
	CKM_ECDSA                          MechanismType = 0x00001041
	CKM_ECDSA_SHA1                     MechanismType = 0x00001042
	CKM_ECDH1_DERIVE                   MechanismType = 0x00001050
	CKM_ECDH1_COFACTOR_DERIVE          MechanismType = 0x00001051
	CKM_ECMQV_DERIVE                   MechanismType = 0x00001052
	CKM_JUNIPER_KEY_GEN                MechanismType = 0x00001060
	CKM_JUNIPER_ECB128                 MechanismType = 0x00001061
	CKM_JUNIPER_CBC128                 MechanismType = 0x00001062
	CKM_JUNIPER_COUNTER                MechanismType = 0x00001063
	CKM_JUNIPER_SHUFFLE                MechanismType = 0x00001064
	CKM_JUNIPER_WRAP                   MechanismType = 0x00001065
	CKM_FASTHASH                       MechanismType = 0x00001070
	CKM_AES_KEY_GEN                    MechanismType = 0x00001080
	CKM_AES_ECB                        MechanismType = 0x00001081
	CKM_AES_CBC                        MechanismType = 0x00001082
	CKM_AES_MAC                        MechanismType = 0x00001083
	CKM_AES_MAC_GENERAL                MechanismType = 0x00001084
	CKM_AES_CBC_PAD                    MechanismType = 0x00001085
	CKM_AES_CTR                        MechanismType = 0x00001086
	CKM_BLOWFISH_KEY_GEN               MechanismType = 0x00001090
	CKM_BLOWFISH_CBC                   MechanismType = 0x00001091
	CKM_TWOFISH_KEY_GEN                MechanismType = 0x00001092
	CKM_TWOFISH_CBC                    MechanismType = 0x00001093
	CKM_DES_ECB_ENCRYPT_DATA           MechanismType = 0x00001100
	CKM_DES_CBC_ENCRYPT_DATA           MechanismType = 0x00001101
	CKM_DES3_ECB_ENCRYPT_DATA          MechanismType = 0x00001102
	CKM_DES3_CBC_ENCRYPT_DATA          MechanismType = 0x00001103
	CKM_AES_ECB_ENCRYPT_DATA           MechanismType = 0x00001104
	CKM_AES_CBC_ENCRYPT_DATA           MechanismType = 0x00001105
	CKM_DSA_PARAMETER_GEN              MechanismType = 0x00002000
	CKM_DH_PKCS_PARAMETER_GEN          MechanismType = 0x00002001
	CKM_X9_42_DH_PARAMETER_GEN         MechanismType = 0x00002002
	CKM_VENDOR_DEFINED                 MechanismType = 0x80000000
)

// Attribute types.
const (
	CKA_CLASS                      AttributeType = 0x00000000
	CKA_TOKEN                      AttributeType = 0x00000001
	CKA_PRIVATE                    AttributeType = 0x00000002
	CKA_LABEL                      AttributeType = 0x00000003
	CKA_APPLICATION                AttributeType = 0x00000010
	CKA_VALUE                      AttributeType = 0x00000011
	CKA_OBJECT_ID                  AttributeType = 0x00000012
	CKA_CERTIFICATE_TYPE           AttributeType = 0x00000080
	CKA_ISSUER                     AttributeType = 0x00000081
	CKA_SERIAL_NUMBER              AttributeType = 0x00000082
	CKA_AC_ISSUER                  AttributeType = 0x00000083
	CKA_OWNER                      AttributeType = 0x00000084
	CKA_ATTR_TYPES                 AttributeType = 0x00000085
	CKA_TRUSTED                    AttributeType = 0x00000086
	CKA_CERTIFICATE_CATEGORY       AttributeType = 0x00000087
	CKA_JAVA_MIDP_SECURITY_DOMAIN  AttributeType = 0x00000088
	CKA_URL                        AttributeType = 0x00000089
	CKA_HASH_OF_SUBJECT_PUBLIC_KEY AttributeType = 0x0000008A
	CKA_HASH_OF_ISSUER_PUBLIC_KEY  AttributeType = 0x0000008B
	CKA_CHECK_VALUE                AttributeType = 0x00000090
	CKA_KEY_TYPE                   AttributeType = 0x00000100
	CKA_SUBJECT                    AttributeType = 0x00000101
	CKA_ID                         AttributeType = 0x00000102
	CKA_SENSITIVE                  AttributeType = 0x00000103
	CKA_ENCRYPT                    AttributeType = 0x00000104
	CKA_DECRYPT                    AttributeType = 0x00000105
	CKA_WRAP                       AttributeType = 0x00000106
	CKA_UNWRAP                     AttributeType = 0x00000107
	CKA_SIGN                       AttributeType = 0x00000108
	CKA_SIGN_RECOVER               AttributeType = 0x00000109
	CKA_VERIFY                     AttributeType = 0x0000010A
	CKA_VERIFY_RECOVER             AttributeType = 0x0000010B
	CKA_DERIVE                     AttributeType = 0x0000010C
	CKA_START_DATE                 AttributeType = 0x00000110
	CKA_END_DATE                   AttributeType = 0x00000111
	CKA_MODULUS                    AttributeType = 0x00000120
	CKA_MODULUS_BITS               AttributeType = 0x00000121
	CKA_PUBLIC_EXPONENT            AttributeType = 0x00000122
	CKA_PRIVATE_EXPONENT           AttributeType = 0x00000123
	CKA_PRIME_1                    AttributeType = 0x00000124
	CKA_PRIME_2                    AttributeType = 0x00000125
	CKA_EXPONENT_1                 AttributeType = 0x00000126
	CKA_EXPONENT_2                 AttributeType = 0x00000127
	CKA_COEFFICIENT                AttributeType = 0x00000128
	CKA_PRIME                      AttributeType = 0x00000130
	CKA_SUBPRIME                   AttributeType = 0x00000131
	CKA_BASE                       AttributeType = 0x00000132
	CKA_PRIME_BITS                 AttributeType = 0x00000133
	CKA_SUBPRIME_BITS              AttributeType = 0x00000134
	CKA_VALUE_BITS                 AttributeType = 0x00000160
	CKA_VALUE_LEN                  AttributeType = 0x00000161
	CKA_EXTRACTABLE                AttributeType = 0x00000162
	CKA_LOCAL                      AttributeType = 0x00000163
	CKA_NEVER_EXTRACTABLE          AttributeType = 0x00000164
	CKA_ALWAYS_SENSITIVE           AttributeType = 0x00000165
	CKA_KEY_GEN_MECHANISM          AttributeType = 0x00000166
	CKA_MODIFIABLE                 AttributeType = 0x00000170
	CKA_EC_PARAMS                  AttributeType = 0x00000180
	CKA_EC_POINT                   AttributeType = 0x00000181
	CKA_SECONDARY_AUTH             AttributeType = 0x00000200
	CKA_AUTH_PIN_FLAGS             AttributeType = 0x00000201
	CKA_ALWAYS_AUTHENTICATE        AttributeType = 0x00000202
	CKA_WRAP_WITH_TRUSTED          AttributeType = 0x00000210
	CKA_WRAP_TEMPLATE              AttributeType = 0x40000211
	CKA_UNWRAP_TEMPLATE            AttributeType = 0x40000212
	CKA_OTP_FORMAT                 AttributeType = 0x00000220
	CKA_OTP_LENGTH                 AttributeType = 0x00000221
	CKA_OTP_TIME_INTERVAL          AttributeType = 0x00000222
	CKA_OTP_USER_FRIENDLY_MODE     AttributeType = 0x00000223
	CKA_OTP_CHALLENGE_REQUIREMENT  AttributeType = 0x00000224
	CKA_OTP_TIME_REQUIREMENT       AttributeType = 0x00000225
	CKA_OTP_COUNTER_REQUIREMENT    AttributeType = 0x00000226
	CKA_OTP_PIN_REQUIREMENT        AttributeType = 0x00000227
	CKA_OTP_COUNTER                AttributeType = 0x0000022E
	CKA_OTP_TIME                   AttributeType = 0x0000022F
	CKA_OTP_USER_IDENTIFIER        AttributeType = 0x0000022A
	CKA_OTP_SERVICE_IDENTIFIER     AttributeType = 0x0000022B
	CKA_OTP_SERVICE_LOGO           AttributeType = 0x0000022C
	CKA_OTP_SERVICE_LOGO_TYPE      AttributeType = 0x0000022D
	CKA_HW_FEATURE_TYPE            AttributeType = 0x00000300
	CKA_RESET_ON_INIT              AttributeType = 0x00000301
	CKA_HAS_RESET                  AttributeType = 0x00000302
	CKA_PIXEL_X                    AttributeType = 0x00000400
	CKA_PIXEL_Y                    AttributeType = 0x00000401
	CKA_RESOLUTION                 AttributeType = 0x00000402
	CKA_CHAR_ROWS                  AttributeType = 0x00000403
	CKA_CHAR_COLUMNS               AttributeType = 0x00000404
	CKA_COLOR                      AttributeType = 0x00000405
	CKA_BITS_PER_PIXEL             AttributeType = 0x00000406
	CKA_CHAR_SETS                  AttributeType = 0x00000480
	CKA_ENCODING_METHODS           AttributeType = 0x00000481
	CKA_MIME_TYPES                 AttributeType = 0x00000482
	CKA_MECHANISM_TYPE             AttributeType = 0x00000500
	CKA_REQUIRED_CMS_ATTRIBUTES    AttributeType = 0x00000501
	CKA_DEFAULT_CMS_ATTRIBUTES     AttributeType = 0x00000502
	CKA_SUPPORTED_CMS_ATTRIBUTES   AttributeType = 0x00000503
	CKA_ALLOWED_MECHANISMS         AttributeType = 0x40000600
	CKA_VENDOR_DEFINED             AttributeType = 0x80000000
)

// User types.
const (
	CKU_SO               UserType = 0x00000000
	CKU_USER             UserType = 0x00000001
	CKU_CONTEXT_SPECIFIC UserType = 0x00000002
)

// Session states.
const (
	CKS_RO_PUBLIC_SESSION State = 0x00000000
	CKS_RO_USER_FUNCTIONS State = 0x00000001
	CKS_RW_PUBLIC_SESSION State = 0x00000002
	CKS_RW_USER_FUNCTIONS State = 0x00000003
	CKS_RW_SO_FUNCTIONS   State = 0x00000004
)

// Object classes.
const (
	CKO_DATA              ObjectClass = 0x00000000
	CKO_CERTIFICATE       ObjectClass = 0x00000001
	CKO_PUBLIC_KEY        ObjectClass = 0x00000002
	CKO_PRIVATE_KEY       ObjectClass = 0x00000003
	CKO_SECRET_KEY        ObjectClass = 0x00000004
	CKO_HW_FEATURE        ObjectClass = 0x00000005
	CKO_DOMAIN_PARAMETERS ObjectClass = 0x00000006
	CKO_MECHANISM         ObjectClass = 0x00000007
	CKO_OTP_KEY           ObjectClass = 0x00000008
	CKO_VENDOR_DEFINED    ObjectClass = 0x80000000
)

// Key types.
const (
	CKK_RSA            KeyType = 0x00000000
	CKK_DSA            KeyType = 0x00000001
	CKK_DH             KeyType = 0x00000002
	CKK_EC             KeyType = 0x00000003
	CKK_X9_42_DH       KeyType = 0x00000004
	CKK_KEA            KeyType = 0x00000005
	CKK_GENERIC_SECRET KeyType = 0x00000010
	CKK_RC2            KeyType = 0x00000011
	CKK_RC4            KeyType = 0x00000012
	CKK_DES            KeyType = 0x00000013
	CKK_DES2           KeyType = 0x00000014
	CKK_DES3           KeyType = 0x00000015
	CKK_CAST           KeyType = 0x00000016
	CKK_CAST3          KeyType = 0x00000017
	CKK_CAST128        KeyType = 0x00000018
	CKK_RC5            KeyType = 0x00000019
	CKK_IDEA           KeyType = 0x0000001A
	CKK_SKIPJACK       KeyType = 0x0000001B
	CKK_BATON          KeyType = 0x0000001C
	CKK_JUNIPER        KeyType = 0x0000001D
	CKK_CDMF           KeyType = 0x0000001E
	CKK_AES            KeyType = 0x0000001F
	CKK_BLOWFISH       KeyType = 0x00000020
	CKK_TWOFISH        KeyType = 0x00000021
	CKK_SECURID        KeyType = 0x00000022
	CKK_HOTP           KeyType = 0x00000023
	CKK_ACTI           KeyType = 0x00000024
	CKK_CAMELLIA       KeyType = 0x00000025
	CKK_ARIA           KeyType = 0x00000026
	CKK_VENDOR_DEFINED KeyType = 0x80000000
)

// Flags.
const (
	CKF_TOKEN_PRESENT                  Flags = 0x00000001
	CKF_REMOVABLE_DEVICE               Flags = 0x00000002
	CKF_HW_SLOT                        Flags = 0x00000004
	CKF_RNG                            Flags = 0x00000001
	CKF_WRITE_PROTECTED                Flags = 0x00000002
	CKF_LOGIN_REQUIRED                 Flags = 0x00000004
	CKF_USER_PIN_INITIALIZED           Flags = 0x00000008
	CKF_RESTORE_KEY_NOT_NEEDED         Flags = 0x00000020
	CKF_CLOCK_ON_TOKEN                 Flags = 0x00000040
	CKF_PROTECTED_AUTHENTICATION_PATH  Flags = 0x00000100
	CKF_DUAL_CRYPTO_OPERATIONS         Flags = 0x00000200
	CKF_TOKEN_INITIALIZED              Flags = 0x00000400
	CKF_SECONDARY_AUTHENTICATION       Flags = 0x00000800
	CKF_USER_PIN_COUNT_LOW             Flags = 0x00010000
	CKF_USER_PIN_FINAL_TRY             Flags = 0x00020000
	CKF_USER_PIN_LOCKED                Flags = 0x00040000
	CKF_USER_PIN_TO_BE_CHANGED         Flags = 0x00080000
	CKF_SO_PIN_COUNT_LOW               Flags = 0x00100000
	CKF_SO_PIN_FINAL_TRY               Flags = 0x00200000
	CKF_SO_PIN_LOCKED                  Flags = 0x00400000
	CKF_SO_PIN_TO_BE_CHANGED           Flags = 0x00800000
	CKF_RW_SESSION                     Flags = 0x00000002
	CKF_SERIAL_SESSION                 Flags = 0x00000004
	CKF_HW                             Flags = 0x00000001
	CKF_ENCRYPT                        Flags = 0x00000100
	CKF_DECRYPT                        Flags = 0x00000200
	CKF_DIGEST                         Flags = 0x00000400
	CKF_SIGN                           Flags = 0x00000800
	CKF_SIGN_RECOVER                   Flags = 0x00001000
	CKF_VERIFY                         Flags = 0x00002000
	CKF_VERIFY_RECOVER                 Flags = 0x00004000
	CKF_GENERATE                       Flags = 0x00008000
	CKF_GENERATE_KEY_PAIR              Flags = 0x00010000
	CKF_WRAP                           Flags = 0x00020000
	CKF_UNWRAP                         Flags = 0x00040000
	CKF_DERIVE                         Flags = 0x00080000
	CKF_EC_F_P                         Flags = 0x00100000
	CKF_EC_F_2M                        Flags = 0x00200000
	CKF_EC_ECPARAMETERS                Flags = 0x00400000
	CKF_EC_NAMEDCURVE                  Flags = 0x00800000
	CKF_EC_UNCOMPRESS                  Flags = 0x01000000
	CKF_EC_COMPRESS                    Flags = 0x02000000
	CKF_EXTENSION                      Flags = 0x80000000
	CKF_LIBRARY_CANT_CREATE_OS_THREADS Flags = 0x00000001
	CKF_OS_LOCKING_OK                  Flags = 0x00000002
	CKF_DONT_BLOCK                     Flags = 0x00000001
)

// CKF_ARRAY_ATTRIBUTE marks attribute types whose value is a nested template.
const CKF_ARRAY_ATTRIBUTE AttributeType = 0x40000000
