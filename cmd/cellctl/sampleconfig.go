// Copyright (c) 2018 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

// sampleConfigFileContents is a string containing the commented example config
// for cellctl.
const sampleConfigFileContents = `[Application Options]

; ------------------------------------------------------------------------------
; Merkle tree settings
; ------------------------------------------------------------------------------

; Hash function used to merge merkle tree nodes (blake256 or blake3).
; hashfunc=blake256


; ------------------------------------------------------------------------------
; Network settings
; ------------------------------------------------------------------------------

; Network whose proof of work limit checkproofofwork checks against (mainnet,
; testnet3, simnet, or regnet).
; net=mainnet


; ------------------------------------------------------------------------------
; Output settings
; ------------------------------------------------------------------------------

; Print the full JSON-RPC response envelope instead of only the result.
; rpcresponse=1


; ------------------------------------------------------------------------------
; Debug
; ------------------------------------------------------------------------------

; Debug logging level.
; Valid levels are {trace, debug, info, warn, error, critical, off}
; debuglevel=info

; Also write log output to the given file.  The file is rotated once it grows
; past 10 MiB and the three most recent rotated files are kept.
; logfile=~/.config/cellctl/logs/cellctl.log
`
