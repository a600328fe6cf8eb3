package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/pubg-dashboard/stats-api/internal/logic"
	"github.com/pubg-dashboard/stats-api/internal/models"
)

func lookupCommand() *cli.Command {
	return &cli.Command{
		Name:  "lookup",
		Usage: "print a player's current season summary",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "platform", Value: "kakao", Usage: "kakao, steam or console"},
			&cli.StringFlag{Name: "name", Required: true, Usage: "exact in-game nickname"},
		},
		Action: func(c *cli.Context) error {
			p, err := models.ParsePlatform(c.String("platform"))
			if err != nil {
				return err
			}

			_, logger, svc, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			profile, err := svc.SearchPlayer(c.Context, c.String("name"), p)
			if err != nil {
				return cli.Exit(logic.UserMessage(logic.OpPlayer, err), 1)
			}
			return printProfile(os.Stdout, profile)
		},
	}
}

func leaderboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "leaderboard",
		Usage: "print the current season leaderboard",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "platform", Value: "kakao", Usage: "kakao, steam or console"},
			&cli.StringFlag{Name: "mode", Value: "squad", Usage: "game mode"},
			&cli.IntFlag{Name: "top", Value: 20, Usage: "number of entries to print"},
		},
		Action: func(c *cli.Context) error {
			p, err := models.ParsePlatform(c.String("platform"))
			if err != nil {
				return err
			}
			mode, err := models.ParseGameMode(c.String("mode"))
			if err != nil {
				return err
			}

			_, logger, svc, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			lb, err := svc.FetchLeaderboard(c.Context, p, mode)
			if err != nil {
				return cli.Exit(logic.UserMessage(logic.OpLeaderboard, err), 1)
			}
			return printLeaderboard(os.Stdout, lb, c.Int("top"))
		},
	}
}

func printProfile(w io.Writer, profile *models.PlayerProfile) error {
	fmt.Fprintf(w, "%s (%s) season %s\n\n", profile.Player.Name, profile.Player.Platform, profile.Season.ID)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tROUNDS\tWINS\tKDA\tK/D\tWIN%\tTOP10%\tAVG DMG\tHS%\tSURVIVED")
	for _, s := range profile.Summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\t%.2f\t%.1f\t%.1f\t%d\t%.1f\t%s\n",
			s.Label, s.RoundsPlayed, s.Wins, s.KDA, s.KD, s.WinRate, s.Top10Rate, s.AvgDamage, s.HeadshotRate, s.TimeSurvived)
	}
	if len(profile.RankedSummaries) > 0 {
		fmt.Fprintln(tw, "\nRANKED\tROUNDS\tWINS\tKDA\tTIER\tRP")
		for _, s := range profile.RankedSummaries {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\t%s\t%d\n", s.Label, s.RoundsPlayed, s.Wins, s.KDA, s.Tier, s.RankPoint)
		}
	}
	return tw.Flush()
}

func printLeaderboard(w io.Writer, lb models.Leaderboard, top int) error {
	fmt.Fprintf(w, "%s %s season %s\n\n", lb.Shard, lb.GameMode, lb.SeasonID)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPLAYER\tRP\tTIER\tGAMES\tWINS\tKDA")
	for i, e := range lb.Entries {
		if top > 0 && i >= top {
			break
		}
		fmt.Fprintf(tw, "%d\t%s\t%.0f\t%s\t%d\t%d\t%.2f\n", e.Rank, e.PlayerName, e.RankPoints, e.Tier, e.Games, e.Wins, e.KDA)
	}
	return tw.Flush()
}
