package cli

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

func cmdCheck() *cobra.Command {
	var userpass string
	var url string

	c := &cobra.Command{
		Use:   "check",
		Short: "Send a request through the gate and report the verdict",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, password, ok := strings.Cut(userpass, ":")
			if userpass != "" && !ok {
				return fmt.Errorf("--user must be in user:pass form")
			}

			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
			if err != nil {
				return err
			}
			if userpass != "" {
				req.SetBasicAuth(username, password)
			}
			if showCurl {
				fmt.Println(curlFor(req, userpass))
			}

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

			fmt.Printf("HTTP %d\n", resp.StatusCode)
			if v := resp.Header.Get("WWW-Authenticate"); v != "" {
				fmt.Printf("WWW-Authenticate: %s\n", v)
			}
			if len(body) > 0 {
				fmt.Println(string(body))
			}
			return nil
		},
	}
	c.Flags().StringVarP(&userpass, "user", "u", "", "credentials in user:pass form")
	c.Flags().StringVar(&url, "url", "http://localhost:8085/party", "URL to probe")
	return c
}

func curlFor(req *http.Request, userpass string) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "curl -i '%s'", req.URL)
	if userpass != "" {
		fmt.Fprintf(sb, " -u %q", userpass)
	}
	return sb.String()
}
