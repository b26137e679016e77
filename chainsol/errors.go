package chainsol

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// knownErrors - error codes the workflows can hit, mapped to messages an
// operator can act on. 0 is the system program's account-in-use error; the
// 2xxx/3xxx codes come from the hook program's Anchor framework.
var knownErrors = map[int]string{
	0:    "AccountAlreadyInUse - the target account was already initialized; re-running a completed setup step is expected to fail here",
	2001: "ConstraintHasOne - the signer does not match the authority stored in the hook config",
	2002: "ConstraintSigner - a required signature is missing",
	2006: "ConstraintSeeds - the derived address does not match the expected PDA",
	3012: "AccountNotInitialized - a referenced account has not been initialized yet; run setup first",
}

var (
	customCodePatterns = []*regexp.Regexp{
		regexp.MustCompile(`"Custom":\s*(\d+)`),
		regexp.MustCompile(`Custom:\s*(\d+)`),
		regexp.MustCompile(`Error Number:\s*(\d+)`), // Anchor logs
	}
	hexCodePattern    = regexp.MustCompile(`custom program error: 0x([0-9a-fA-F]+)`)
	programLogPattern = regexp.MustCompile(`Program log: ([^\n"\\]+)`)
)

// ExtractErrorCode pulls the custom program error code out of an RPC error,
// which arrives in several shapes depending on whether the transaction failed
// in simulation or on chain.
func ExtractErrorCode(err error) *int {
	if err == nil {
		return nil
	}
	errStr := err.Error()

	for _, pattern := range customCodePatterns {
		if matches := pattern.FindStringSubmatch(errStr); len(matches) > 1 {
			if code, convErr := strconv.Atoi(matches[1]); convErr == nil {
				return &code
			}
		}
	}

	if matches := hexCodePattern.FindStringSubmatch(errStr); len(matches) > 1 {
		if code, convErr := strconv.ParseInt(matches[1], 16, 64); convErr == nil {
			intCode := int(code)
			return &intCode
		}
	}

	return nil
}

// ParseProgramError turns a ledger rejection into a diagnostic message.
// Logic errors keep their program error text; expired blockhash is called out
// as the one retryable condition.
func ParseProgramError(err error) string {
	if err == nil {
		return ""
	}
	errStr := err.Error()

	if strings.Contains(errStr, "BlockhashNotFound") ||
		strings.Contains(errStr, "Blockhash not found") {
		return "transaction expired (blockhash no longer valid) - safe to re-run the workflow"
	}

	if strings.Contains(errStr, "already in use") {
		return knownErrors[0]
	}

	if code := ExtractErrorCode(err); code != nil {
		if msg, ok := knownErrors[*code]; ok {
			return msg
		}
		return fmt.Sprintf("custom program error code %d", *code)
	}

	if strings.Contains(errStr, "insufficient funds") ||
		strings.Contains(errStr, "insufficient lamports") {
		return "insufficient SOL balance to fund the transaction"
	}

	if strings.Contains(errStr, "simulation failed") {
		return "transaction simulation failed - check program logs"
	}

	if len(errStr) > 300 {
		return errStr[:300] + "..."
	}
	return errStr
}

// ExtractLogMessages pulls "Program log:" lines out of an RPC error payload
func ExtractLogMessages(err error) []string {
	if err == nil {
		return nil
	}

	var logs []string
	seen := make(map[string]bool)
	for _, match := range programLogPattern.FindAllStringSubmatch(err.Error(), -1) {
		line := strings.TrimSpace(match[1])
		if line != "" && !seen[line] {
			seen[line] = true
			logs = append(logs, line)
		}
	}
	return logs
}
