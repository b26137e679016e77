package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"paragonpool/chainsol"
	"paragonpool/workflow"
)

// =====================================================
// CONFIGURATION - FILL THESE IN
// =====================================================
const (
	// Metadata URI (upload PNG and metadata.json to Arweave first)
	metadataURI = "https://arweave.net/-Jzxp64F3K2-K2hOpW9VqU3Vk8jodJCN2l4wcyW-8UY"

	// Wallet allowed to update the winner later
	authorityWallet = "BgK6YKvDmriwY9p9hBQFmHDc3fnLsrMNxaxHfd1iF4DG"

	// Initial winner wallet (changed any time via cmd/update-winner)
	initialWinnerWallet = "BgK6YKvDmriwY9p9hBQFmHDc3fnLsrMNxaxHfd1iF4DG"

	tokenName        = "Paragon Pool"
	tokenSymbol      = "PRPL"
	tokenDescription = "Weekly pool token where 1% of transfers go to the winner"
	tokenWebsite     = "https://paragoncrypto.biz"
	tokenDecimals    = 6

	// Transfer hook program (devnet deployment)
	hookProgramID = "HookLb6XLcGwzaVWxk9T8yWbmejbLX4xwUxRp1zipNN"
)

func main() {
	fmt.Println("🚀 Setting up Paragon Pool (PRPL) token...")

	ctx := context.Background()

	wallet, err := workflow.LoadWallet()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	fmt.Printf("Wallet: %s\n", wallet.PublicKey())

	authority, err := solana.PublicKeyFromBase58(authorityWallet)
	if err != nil {
		log.Fatalf("❌ Invalid authority wallet address: %v", err)
	}
	initialWinner, err := solana.PublicKeyFromBase58(initialWinnerWallet)
	if err != nil {
		log.Fatalf("❌ Invalid initial winner wallet address: %v", err)
	}
	hookProgram, err := solana.PublicKeyFromBase58(hookProgramID)
	if err != nil {
		log.Fatalf("❌ Invalid hook program address: %v", err)
	}

	client, err := chainsol.NewClient(ctx, chainsol.Config{
		RPCURL:  rpc.DevNet_RPC,
		WSURL:   rpc.DevNet_WS,
		Network: "devnet",
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect: %v", err)
	}
	defer client.Close()

	if err := client.HealthCheck(ctx); err != nil {
		log.Fatalf("❌ RPC health check failed: %v", err)
	}
	fmt.Println("✅ Connected to Solana Devnet")

	result, err := workflow.Setup(ctx, client, workflow.SetupParams{
		Token: workflow.TokenConfig{
			Name:        tokenName,
			Symbol:      tokenSymbol,
			URI:         metadataURI,
			Description: tokenDescription,
			Website:     tokenWebsite,
			Decimals:    tokenDecimals,
		},
		HookProgramID: hookProgram,
		Payer:         wallet,
		Authority:     authority,
		InitialWinner: initialWinner,
	})
	if err != nil {
		log.Fatalf("❌ Error setting up token: %v", err)
	}

	fmt.Println("\n🎉 SETUP COMPLETE!")
	fmt.Println("=====================================")
	fmt.Printf("Token Name:               %s (%s)\n", tokenName, tokenSymbol)
	fmt.Printf("Mint Address:             %s\n", result.Mint)
	fmt.Printf("Your Token Account:       %s\n", result.TokenAccount)
	fmt.Printf("Hook Config PDA:          %s\n", result.HookConfig)
	fmt.Printf("Extra Account Meta List:  %s\n", result.ExtraAccountMetaList)
	fmt.Printf("Transfer Hook Program:    %s\n", hookProgram)
	fmt.Printf("Current Winner Wallet:    %s\n", initialWinner)
	fmt.Printf("Authority:                %s\n", authority)

	fmt.Println("\nTransactions:")
	for _, sig := range result.Signatures {
		fmt.Printf("  %s\n", client.ExplorerURL(sig.String()))
	}

	fmt.Println("\n📝 NEXT STEPS:")
	fmt.Println("1. Copy the mint address into cmd/mint and cmd/update-winner")
	fmt.Println("2. Run cmd/mint to mint initial supply")
	fmt.Println("3. Run cmd/update-winner to change the winner wallet anytime")
	fmt.Println("\n💡 SAVE THESE ADDRESSES - YOU'LL NEED THEM!")
}
