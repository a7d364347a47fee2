package sqlinline

const QSelectIntegrationToken = `--sql a9ca22cf-5727-4f9b-9306-0abf2e5d5693
select token
from integration_tokens
where provider = $1::text
limit 1;
`

const QUpsertIntegrationToken = `--sql df1d81c2-7e23-4ba6-bb30-b26893aafcd8
insert into integration_tokens (id, provider, token, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::text, now(), now())
on conflict (provider) do update set
    token = excluded.token,
    updated_at = now();
`
